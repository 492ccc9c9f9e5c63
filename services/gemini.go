package services

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

const flashcardPrompt = `
Please analyze this PDF document and create comprehensive flashcards for studying.

Requirements:
- Generate 1-2 flashcards for each page covering the main concepts
- Each flashcard should have a clear, specific question
- Answers should be concise (2-3 lines maximum)
- Include the page number where the information can be found
- Focus on key concepts, definitions, important facts, and relationships
- Vary the difficulty levels

Return the response as a JSON array with this exact structure:
[
  {
    "id": "unique_id",
    "question": "Clear, specific question",
    "answer": "Concise answer in 1-2 lines",
    "page_no": page_number,
    "difficulty": "easy|medium|hard"
  }
]

Only return the JSON array, no additional text or explanations.
`

const summaryPrompt = `
Please analyze this PDF document and provide a comprehensive summary in the following JSON format. Make sure your response is valid JSON and includes all the required fields:

{
  "overallSummary": "A comprehensive 3-4 paragraph summary of the entire document covering main themes, objectives, and conclusions",
  "keyTopics": [
    {
      "topic": "Topic name",
      "description": "Brief description of what this topic covers",
      "pageNumbers": [1, 2, 3],
      "importance": "high|medium|low"
    }
  ],
  "learningRecommendations": [
    {
      "type": "prerequisite|follow_up|practice|resource",
      "title": "Recommendation title",
      "description": "Detailed description of the recommendation",
      "priority": "high|medium|low"
    }
  ],
  "documentStats": {
    "totalPages": number,
    "estimatedReadingTime": number_in_minutes,
    "difficulty": "beginner|intermediate|advanced",
    "category": "Subject or field category"
  }
}

Guidelines for analysis:
1. **Overall Summary**: Provide a comprehensive overview that captures the main purpose, key findings, and conclusions of the document. Include the document's scope and target audience.

2. **Key Topics**: Identify 5-10 major topics or themes covered in the document. For each topic:
   - Use clear, descriptive names
   - Provide a brief explanation of what the topic covers
   - List the specific page numbers where this topic is discussed
   - Rate importance based on how central it is to the document's main purpose

3. **Learning Recommendations**: Provide 4-8 actionable recommendations:
   - **Prerequisites**: What should readers know before studying this document
   - **Follow-up**: What to study next after mastering this content
   - **Practice**: Exercises, problems, or activities to reinforce learning
   - **Resources**: Additional materials, tools, or references that would be helpful

4. **Document Stats**:
   - Count actual pages in the document
   - Estimate reading time based on content density (average 250 words per minute)
   - Assess difficulty based on vocabulary, concepts, and assumed knowledge
   - Categorize by academic field or professional domain

Focus on accuracy and provide specific, actionable insights. Ensure page numbers are accurate and recommendations are practical for learners.

Please respond with only the JSON object, no additional text or formatting.
`

// GeminiGenerateFromPDF sends the PDF bytes inline together with a prompt
// and returns the model's raw text reply.
func GeminiGenerateFromPDF(ctx context.Context, pdfData []byte, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		return "", fmt.Errorf("cannot create Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: "application/pdf", Data: pdfData},
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %v", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no usable candidates")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
