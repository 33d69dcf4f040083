package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type LLMClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewLLMClient(ctx context.Context) (*LLMClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel("gemini-2.5-flash")
	model.SetTemperature(0.8)

	return &LLMClient{
		client: client,
		model:  model,
	}, nil
}

// MotivationInput is the context handed to the model when writing the
// user's daily message.
type MotivationInput struct {
	Language          string // "pt", "en" or "es"
	StreakDays        int
	CigarettesAvoided int
	MoneySaved        int64
	CurrencyCode      string
	CravingsResisted  int
}

var languageNames = map[string]string{
	"pt": "Brazilian Portuguese",
	"en": "English",
	"es": "Spanish",
}

func (c *LLMClient) GenerateMotivation(ctx context.Context, in MotivationInput) (string, error) {
	language := languageNames[in.Language]
	if language == "" {
		language = languageNames["pt"]
	}

	prompt := fmt.Sprintf(`
You write the daily motivational message for a quit-smoking app user.

User progress:
- Days without smoking: %d
- Cigarettes avoided: %d
- Money saved: %d (minor units of %s)
- Cravings resisted: %d

Instructions:
1. Write in %s.
2. Two or three short sentences, warm and personal, no hashtags, no emoji.
3. Mention at most one of the numbers above, the most impressive one.
4. Never mention relapses or shame the user.
5. Output plain text only.
`, in.StreakDays, in.CigarettesAvoided, in.MoneySaved, in.CurrencyCode, in.CravingsResisted, language)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from LLM")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			message := strings.TrimSpace(string(txt))
			if message != "" {
				return message, nil
			}
		}
	}

	return "", fmt.Errorf("no text content in response")
}

func (c *LLMClient) Close() {
	c.client.Close()
}
