package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Khatixer/farmguard-ai/config"
)

// PlantDiagnosis is the structured reply requested from the model.
type PlantDiagnosis struct {
	IsPlant    bool    `json:"isPlant"`
	PlantName  string  `json:"plantName"`
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
	RemedyID   string  `json:"remedyId"`
}

const diagnosisPrompt = "Analyze this image. " +
	"1. Determine if it is a plant (isPlant: true/false). " +
	"2. If it is a plant, identify it and any disease. If no disease, state 'Healthy'. " +
	"3. If it is NOT a plant, set plantName to 'Unknown' and disease to 'None'. " +
	"4. Provide a confidence score (0-1). " +
	"5. Suggest an organic remedy category: 'baking-soda-spray', 'neem-oil-mix', 'garlic-chili-spray' or 'none'."

var diagnosisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isPlant":    {Type: genai.TypeBoolean},
		"plantName":  {Type: genai.TypeString},
		"disease":    {Type: genai.TypeString},
		"confidence": {Type: genai.TypeNumber},
		"remedyId":   {Type: genai.TypeString},
	},
	Required: []string{"isPlant", "plantName", "disease", "confidence", "remedyId"},
}

// DiagnosePlant sends the captured image to Gemini and returns the parsed
// reply. The caller decides what to do with isPlant=false; any transport or
// parse failure is returned as-is with no retry.
func DiagnosePlant(ctx context.Context, imageDataURI string) (*PlantDiagnosis, error) {
	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	mimeType, imageBytes, err := DecodeImageDataURI(imageDataURI)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(imageBytes, mimeType),
			genai.NewPartFromText(diagnosisPrompt),
		}, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, config.GeminiModel(), contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   diagnosisSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("diagnosis request failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, fmt.Errorf("the AI model returned an empty response")
	}

	var diagnosis PlantDiagnosis
	if err := json.Unmarshal([]byte(text), &diagnosis); err != nil {
		return nil, fmt.Errorf("malformed diagnosis response: %w", err)
	}
	return &diagnosis, nil
}

// DecodeImageDataURI decodes a "data:<mime>;base64,<payload>" URI into its
// mime type and raw bytes. A bare base64 string is accepted and assumed to
// be JPEG, matching what the scanner uploads.
func DecodeImageDataURI(uri string) (string, []byte, error) {
	mimeType := "image/jpeg"
	payload := uri
	if strings.HasPrefix(uri, "data:") {
		header, rest, ok := strings.Cut(uri[len("data:"):], ",")
		if !ok {
			return "", nil, fmt.Errorf("invalid image data URI")
		}
		payload = rest
		header = strings.TrimSuffix(header, ";base64")
		if header != "" {
			mimeType = header
		}
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid image encoding: %w", err)
	}
	if len(raw) == 0 {
		return "", nil, fmt.Errorf("empty image payload")
	}
	return mimeType, raw, nil
}
