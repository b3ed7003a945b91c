package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"bbl-admins-portal/internal/entity"
	"bbl-admins-portal/internal/repo"
	"bbl-admins-portal/internal/repo/repo_errors"
)

// tagPattern matches inline references the chat renders as links:
// shipment ids, auction items and portal menu shortcuts.
var tagPattern = regexp.MustCompile(`(#BBL-[\w-]+|#auc-[\w-]+|#insights|#tracking|#packing-list|#auction-listing|#settings)`)

const linkClass = "text-accent underline hover:text-accent/80"

var menuRoutes = map[string]string{
	"#insights":        "/admin",
	"#tracking":        "/admin/tracking",
	"#packing-list":    "/admin/packing-list",
	"#auction-listing": "/admin/auction-listing",
	"#settings":        "/admin/settings",
}

type ChatService struct {
	chatRepo  repo.Chat
	adminRepo repo.Admin
}

func NewChatService(repos *repo.Repositories) *ChatService {
	return &ChatService{
		chatRepo:  repos.Chat,
		adminRepo: repos.Admin,
	}
}

func (s *ChatService) GetMessages(ctx context.Context) ([]entity.ChatMessageOutputModel, error) {
	messages, err := s.chatRepo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}

	return mapChatMessages(messages), nil
}

func (s *ChatService) PostMessage(ctx context.Context, authorId, text string) (*entity.ChatMessageOutputModel, error) {
	author, err := s.adminRepo.GetAdminById(ctx, authorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrAdminNotFound
		}

		return nil, err
	}

	message := &entity.ChatMessage{
		AdminId:     author.Id,
		AdminName:   author.Name,
		AvatarUrl:   author.AvatarUrl,
		Message:     text,
		MessageHtml: renderMessage(text),
		Timestamp:   time.Now().UTC(),
	}

	if _, err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	return mapChatMessage(message), nil
}

func (s *ChatService) EditMessage(ctx context.Context, authorId, messageId, text string) (*entity.ChatMessageOutputModel, error) {
	message, err := s.getMessage(ctx, messageId)
	if err != nil {
		return nil, err
	}

	if message.AdminId != authorId {
		return nil, ErrNotMessageAuthor
	}
	if !message.Editable(time.Now().UTC()) {
		return nil, ErrEditWindowClosed
	}

	message.Message = text
	message.MessageHtml = renderMessage(text)
	message.Edited = true
	if err := s.chatRepo.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}

	return mapChatMessage(message), nil
}

func (s *ChatService) DeleteMessage(ctx context.Context, authorId, messageId string) error {
	message, err := s.getMessage(ctx, messageId)
	if err != nil {
		return err
	}

	if message.AdminId != authorId {
		return ErrNotMessageAuthor
	}
	if !message.Editable(time.Now().UTC()) {
		return ErrEditWindowClosed
	}

	return s.chatRepo.DeleteMessage(ctx, messageId)
}

func (s *ChatService) ClearHistory(ctx context.Context) error {
	return s.chatRepo.ClearMessages(ctx)
}

func (s *ChatService) getMessage(ctx context.Context, id string) (*entity.ChatMessage, error) {
	message, err := s.chatRepo.GetMessageById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrMessageNotFound
		}

		return nil, err
	}

	return message, nil
}

// renderMessage escapes the raw text and turns recognized tags into links.
func renderMessage(text string) string {
	escaped := html.EscapeString(text)

	return tagPattern.ReplaceAllStringFunc(escaped, func(tag string) string {
		var href string
		switch {
		case strings.HasPrefix(tag, "#BBL-"):
			href = "/admin/tracking?q=" + strings.TrimPrefix(tag, "#")
		case strings.HasPrefix(tag, "#auc-"):
			href = "/admin/auction-listing?item=" + strings.TrimPrefix(tag, "#")
		default:
			route, ok := menuRoutes[tag]
			if !ok {
				return tag
			}
			href = route
		}

		return fmt.Sprintf(`<a href="%s" class="%s">%s</a>`, href, linkClass, tag)
	})
}
