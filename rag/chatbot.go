package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/waliuddin1105/crowdfund/apperrors"
	"github.com/waliuddin1105/crowdfund/models"
	"gorm.io/gorm"
)

const historyLimit = 10
const retrievalLimit = 3

// smallTalk answers common pleasantries without touching retrieval.
var smallTalk = map[string]string{
	"hi":        "Hello! How can I help you today?",
	"hello":     "Hi there! Welcome to our crowdfunding platform.",
	"hey":       "Hey! What can I assist you with?",
	"thanks":    "You're welcome!",
	"thank you": "Happy to help!",
	"bye":       "Goodbye! Have a great day!",
	"goodbye":   "Take care! Feel free to come back anytime.",
}

const systemPrompt = `You are an AI assistant for CrowdFund, a crowdfunding platform where people donate to verified causes through multiple payment methods.

INSTRUCTIONS:
- For greetings: respond warmly and briefly
- For questions: use the context below AND the conversation history to answer accurately
- Refer back to previous messages when relevant
- If uncertain: say "I don't have that specific information in my knowledge base"
- Be professional, concise, and helpful
- Break down complex processes into clear steps

CONTEXT FROM KNOWLEDGE BASE:
%s`

// Chatbot answers support questions by retrieving knowledge-base context
// and prompting the chat model with conversation history from the
// database.
type Chatbot struct {
	DB     *gorm.DB
	Client *OpenAIClient
	Index  *Index
}

func NewChatbot(db *gorm.DB, client *OpenAIClient) *Chatbot {
	return &Chatbot{DB: db, Client: client, Index: NewIndex()}
}

// Warmup loads the knowledge base into the in-memory index.
func (b *Chatbot) Warmup() error {
	return b.Index.Load(b.DB)
}

// SmallTalkReply returns a canned reply for greetings and thanks, or
// false when the message needs retrieval.
func SmallTalkReply(message string) (string, bool) {
	reply, ok := smallTalk[strings.ToLower(strings.TrimSpace(message))]
	return reply, ok
}

// Respond stores the user message, generates a reply and stores that too.
func (b *Chatbot) Respond(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperrors.Validation("message is required")
	}

	if err := b.addMessage(userID, "user", message); err != nil {
		return "", err
	}

	reply, err := b.generate(ctx, userID, message)
	if err != nil {
		return "", err
	}

	if err := b.addMessage(userID, "assistant", reply); err != nil {
		return "", err
	}
	return reply, nil
}

func (b *Chatbot) generate(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	if reply, ok := SmallTalkReply(message); ok {
		return reply, nil
	}

	vectors, err := b.Client.Embed(ctx, []string{message})
	if err != nil {
		return "", fmt.Errorf("embedding query: %w", err)
	}
	matches := b.Index.Search(vectors[0], retrievalLimit)

	var contextParts []string
	for _, m := range matches {
		contextParts = append(contextParts, m.Content)
	}
	knowledge := strings.Join(contextParts, "\n\n---\n\n")
	if knowledge == "" {
		knowledge = "(no relevant documents found)"
	}

	history, err := b.History(userID, historyLimit)
	if err != nil {
		return "", err
	}

	turns := []ChatTurn{{Role: "system", Content: fmt.Sprintf(systemPrompt, knowledge)}}
	turns = append(turns, HistoryTurns(history)...)
	turns = append(turns, ChatTurn{Role: "user", Content: message})

	reply, err := b.Client.Complete(ctx, turns)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}

// HistoryTurns converts stored chat rows to model turns, skipping the
// just-stored current message (the final user row).
func HistoryTurns(history []models.ChatMessage) []ChatTurn {
	if n := len(history); n > 0 && history[n-1].Role == "user" {
		history = history[:n-1]
	}
	turns := make([]ChatTurn, 0, len(history))
	for _, msg := range history {
		role := "user"
		if strings.EqualFold(msg.Role, "assistant") {
			role = "assistant"
		}
		turns = append(turns, ChatTurn{Role: role, Content: msg.Message})
	}
	return turns
}

func (b *Chatbot) addMessage(userID uuid.UUID, role, message string) error {
	msg := models.ChatMessage{UserID: userID, Role: role, Message: message}
	if err := b.DB.Create(&msg).Error; err != nil {
		return apperrors.Persistence(err)
	}
	return nil
}

// History returns the most recent messages for a user in chronological
// order. limit <= 0 returns everything.
func (b *Chatbot) History(userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	query := b.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var messages []models.ChatMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (b *Chatbot) DeleteHistory(userID uuid.UUID) error {
	err := b.DB.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error
	if err != nil {
		return apperrors.Persistence(err)
	}
	return nil
}

// AddDocument embeds and stores a knowledge document, then indexes it.
func (b *Chatbot) AddDocument(ctx context.Context, title, content string) (*models.KnowledgeDocument, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("document content is required")
	}

	vectors, err := b.Client.Embed(ctx, []string{content})
	if err != nil {
		return nil, fmt.Errorf("embedding document: %w", err)
	}

	doc := models.KnowledgeDocument{
		Title:     title,
		Content:   content,
		Embedding: VectorToBytes(vectors[0]),
	}
	if err := b.DB.Create(&doc).Error; err != nil {
		return nil, apperrors.Persistence(err)
	}

	b.Index.Add(doc)
	return &doc, nil
}

var ErrNotConfigured = errors.New("chatbot is not configured")
