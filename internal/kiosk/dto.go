package kiosk

// Request and response shapes for the kiosk endpoints. The wire contract is
// shared with the wizard front end and must stay stable.

type generateImageRequest struct {
	ImageBase64 string `json:"imageBase64"`
	Prompt      string `json:"prompt"`
}

type generateImageResponse struct {
	Success      bool   `json:"success"`
	ImageDataURL string `json:"imageDataUrl,omitempty"`
}

type generateDescriptionRequest struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Level  string `json:"level"`
	Prompt string `json:"prompt,omitempty"`
}

type generateDescriptionResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
}

type sendBadgeRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Level     string `json:"level,omitempty"`
	Score     int    `json:"score,omitempty"`
}

type sendBadgeResponse struct {
	Success bool `json:"success"`
}

type generateCertificateRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Score        int    `json:"score"`
	PhotoDataURL string `json:"photoDataUrl,omitempty"`
}

type generateCertificateResponse struct {
	Success bool             `json:"success"`
	Result  GenerationResult `json:"result"`
}
