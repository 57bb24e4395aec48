package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// MediaUploadResult holds the stored image identifiers returned by the
// media store.
type MediaUploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// UploadMedia pushes a local file to the media store under folder and
// returns its public id and serving URL.
func UploadMedia(localPath, folder string) (*MediaUploadResult, error) {
	client := resty.New()
	resp, err := client.R().
		SetFile("file", localPath).
		SetFormData(map[string]string{
			"folder":  folder,
			"api_key": config.AppConfig.MediaApiKey,
		}).
		Post(config.AppConfig.MediaBaseURL + "/image/upload")
	if err != nil {
		log.Printf("Media upload failed: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Media upload rejected: %s", resp.String())
		return nil, fmt.Errorf("media store returned status %d", resp.StatusCode())
	}

	var result MediaUploadResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	if result.PublicID == "" || result.SecureURL == "" {
		return nil, fmt.Errorf("media store returned an incomplete result")
	}

	return &result, nil
}

// DestroyMedia removes a stored image by public id.
func DestroyMedia(publicID string) error {
	client := resty.New()
	resp, err := client.R().
		SetFormData(map[string]string{
			"public_id": publicID,
			"api_key":   config.AppConfig.MediaApiKey,
		}).
		Post(config.AppConfig.MediaBaseURL + "/image/destroy")
	if err != nil {
		log.Printf("Media destroy failed: %v", err)
		return err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Media destroy rejected: %s", resp.String())
		return fmt.Errorf("media store returned status %d", resp.StatusCode())
	}
	return nil
}
