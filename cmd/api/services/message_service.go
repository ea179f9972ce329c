package services

import (
	"context"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/events"
	"portfolio-blog/models"
	"portfolio-blog/repositories"
)

// MessageService stores contact form submissions for the owner's inbox.
type MessageService struct {
	repo   MessageRepository
	events Emitter
}

func NewMessageService(repo MessageRepository, emitter Emitter) *MessageService {
	return &MessageService{repo: repo, events: emitter}
}

type ListMessagesInput struct {
	Read *bool
}

func (s *MessageService) List(ctx context.Context, in ListMessagesInput) ([]models.Message, error) {
	return s.repo.List(ctx, repositories.MessageFilter{Read: in.Read})
}

// Create always stores the message as unread.
func (s *MessageService) Create(ctx context.Context, in dto.MessageInput) (*models.Message, error) {
	msg := in.Model()
	msg.Read = false
	if err := validateStruct(msg); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, &msg); err != nil {
		return nil, err
	}
	emit(ctx, s.events, events.NewMessageEvent(events.MessageReceived, msg.ID.Hex(), msg.Name, msg.Email, msg.Read))
	return &msg, nil
}

func (s *MessageService) Get(ctx context.Context, hexID string) (*models.Message, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return msg, nil
}

func (s *MessageService) Update(ctx context.Context, hexID string, patch dto.MessagePatch) (*models.Message, error) {
	msg, err := s.Get(ctx, hexID)
	if err != nil {
		return nil, err
	}
	patch.Apply(msg)
	if err := validateStruct(msg); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, msg); err != nil {
		return nil, mapStoreErr(err)
	}
	emit(ctx, s.events, events.NewMessageEvent(events.MessageUpdated, msg.ID.Hex(), "", "", msg.Read))
	return msg, nil
}

func (s *MessageService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	emit(ctx, s.events, events.NewMessageEvent(events.MessageDeleted, id.Hex(), "", "", false))
	return nil
}
