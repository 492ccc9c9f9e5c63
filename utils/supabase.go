package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

const storageBucket = "files"

func storageClient() *storage.Client {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	return storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)
}

// UploadFileToSupabase stores an uploaded document under the given object
// path in the files bucket and returns that path.
func UploadFileToSupabase(fileHeader *multipart.FileHeader, objectPath string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err = storageClient().UploadFile(storageBucket, objectPath, &buf, options)
	if err != nil {
		return "", err
	}
	return objectPath, nil
}

// DownloadFileFromSupabase fetches the raw object bytes for a stored path.
func DownloadFileFromSupabase(objectPath string) ([]byte, error) {
	data, err := storageClient().DownloadFile(storageBucket, objectPath)
	if err != nil {
		return nil, fmt.Errorf("storage download failed for %s: %w", objectPath, err)
	}
	return data, nil
}

// PublicFileURL returns the public URL used for in-browser rendering.
func PublicFileURL(objectPath string) string {
	supabaseURL := strings.TrimRight(os.Getenv("SUPABASE_URL"), "/")
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", supabaseURL, storageBucket, objectPath)
}

// DeleteFileFromSupabase removes an object from the files bucket.
// Supabase expects Authorization: Bearer <key> and an apikey header.
func DeleteFileFromSupabase(objectPath string) error {
	if objectPath == "" {
		return nil
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_URL or SUPABASE_KEY not configured")
	}

	// strip query params and unescape, in case a full URL slipped in
	object := objectPath
	if qIdx := strings.Index(object, "?"); qIdx != -1 {
		object = object[:qIdx]
	}
	if u, err := url.PathUnescape(object); err == nil {
		object = u
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", strings.TrimRight(supabaseURL, "/"), storageBucket, object)

	req, err := http.NewRequest("DELETE", deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("apikey", supabaseKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("supabase delete failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
