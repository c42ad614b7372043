package chat

import (
	"fmt"
	"strings"
	"time"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
	"fishmarket/utils"
)

// ChatService handles listing-scoped messaging between buyers and
// sellers.
type ChatService struct {
	repo repository.MarketDB
}

// NewChatService creates a new ChatService instance
func NewChatService(repo repository.MarketDB) *ChatService {
	return &ChatService{
		repo: repo,
	}
}

// Send records a message on a listing's conversation.
func (s *ChatService) Send(senderID, receiverID, listingID, text string) (model.Message, error) {
	if senderID == "" || receiverID == "" || listingID == "" {
		return model.Message{}, fmt.Errorf("service: %w - missing sender, receiver or listing", marketerrors.ErrInvalidOrder)
	}
	if senderID == receiverID {
		return model.Message{}, fmt.Errorf("service: %w - cannot message yourself", marketerrors.ErrForbidden)
	}
	if strings.TrimSpace(text) == "" {
		return model.Message{}, fmt.Errorf("service: %w - empty message", marketerrors.ErrInvalidOrder)
	}

	if _, err := s.repo.GetProfile(receiverID); err != nil {
		return model.Message{}, fmt.Errorf("service: failed to get profile %s: %w", receiverID, err)
	}
	if _, err := s.repo.GetListing(listingID); err != nil {
		return model.Message{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	m := model.Message{
		ID:         utils.GenerateID(),
		ListingID:  listingID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    strings.TrimSpace(text),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.CreateMessage(m); err != nil {
		return model.Message{}, fmt.Errorf("service: failed to send message on listing %s: %w", listingID, err)
	}
	return m, nil
}

// Conversation returns a listing's messages oldest first, restricted to
// participants and the listing owner.
func (s *ChatService) Conversation(actorID, listingID string) ([]model.Message, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrInvalidOrder)
	}
	l, err := s.repo.GetListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	msgs, err := s.repo.MessagesByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get messages for listing %s: %w", listingID, err)
	}
	if actorID == l.FishermanID {
		return msgs, nil
	}

	// Buyers only see the thread they are part of.
	out := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.SenderID == actorID || m.ReceiverID == actorID {
			out = append(out, m)
		}
	}
	return out, nil
}
