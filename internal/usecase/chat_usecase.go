package usecase

import (
	"context"
	"time"

	"influmarket/internal/domain/entity"
	"influmarket/internal/domain/repository"
	"influmarket/internal/infrastructure/ratelimit"
	ws "influmarket/internal/infrastructure/websocket"
	"influmarket/pkg/errors"
	"influmarket/pkg/logger"
	"influmarket/pkg/snowflake"
)

type ChatUseCase struct {
	resolver       *ActorResolver
	messageRepo    repository.MessageRepository
	campaignRepo   repository.CampaignRepository
	influencerRepo repository.InfluencerRepository
	brandRepo      repository.BrandRepository
	registry       *ws.Registry
	limiter        *ratelimit.RateLimiter
	node           *snowflake.Node
}

func NewChatUseCase(
	resolver *ActorResolver,
	messageRepo repository.MessageRepository,
	campaignRepo repository.CampaignRepository,
	influencerRepo repository.InfluencerRepository,
	brandRepo repository.BrandRepository,
	registry *ws.Registry,
	limiter *ratelimit.RateLimiter,
	node *snowflake.Node,
) *ChatUseCase {
	return &ChatUseCase{
		resolver:       resolver,
		messageRepo:    messageRepo,
		campaignRepo:   campaignRepo,
		influencerRepo: influencerRepo,
		brandRepo:      brandRepo,
		registry:       registry,
		limiter:        limiter,
		node:           node,
	}
}

type SendMessageInput struct {
	Body     string `json:"message"`
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type MessagesReadPayload struct {
	ProposalID string  `json:"proposal_id"`
	ReaderID   string  `json:"read_by"`
	MessageIDs []int64 `json:"message_ids"`
}

type TypingPayload struct {
	ProposalID string `json:"proposal_id"`
	UserID     string `json:"user_id"`
	Typing     bool   `json:"is_typing"`
}

// JoinRoom authorizes the user against the proposal and adds the connection
// to the room. Re-joining is harmless.
func (uc *ChatUseCase) JoinRoom(ctx context.Context, client *ws.Client, campaignID, proposalID string) error {
	if _, _, err := uc.resolver.Authorize(ctx, client.UserID, campaignID, proposalID); err != nil {
		return err
	}

	uc.registry.Join(ws.RoomKey(campaignID, proposalID), client)
	return nil
}

// LeaveRoom drops the connection from the room. No authorization needed;
// leaving a room you were never in does nothing.
func (uc *ChatUseCase) LeaveRoom(client *ws.Client, campaignID, proposalID string) {
	uc.registry.Leave(ws.RoomKey(campaignID, proposalID), client)
}

// Typing relays a typing indicator to the other members of the room. The
// typist never receives their own indicator, and nothing is persisted.
func (uc *ChatUseCase) Typing(client *ws.Client, campaignID, proposalID string, typing bool) error {
	roomKey := ws.RoomKey(campaignID, proposalID)
	if !uc.registry.IsMember(roomKey, client) {
		return errors.Forbidden("Join the chat before sending typing events", nil)
	}

	if allowed, _ := uc.limiter.Allow(client.UserID, "typing"); !allowed {
		// Typing indicators are best-effort; a throttled one is dropped
		// silently rather than surfaced as an error.
		return nil
	}

	frame, err := ws.NewEvent(ws.EventUserTyping, TypingPayload{
		ProposalID: proposalID,
		UserID:     client.UserID,
		Typing:     typing,
	})
	if err != nil {
		return errors.Internal("Failed to encode typing event", err)
	}

	uc.registry.BroadcastExcept(roomKey, client, frame)
	return nil
}

// SendMessage validates, persists and then broadcasts a chat message. The
// sender identity comes from the authenticated session, never from the
// payload, and the recipient is always the other party to the proposal.
// Nothing reaches the room until the message is durably stored.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, campaignID, proposalID string, input SendMessageInput) (*entity.ChatMessage, error) {
	actor, proposal, err := uc.resolver.Authorize(ctx, userID, campaignID, proposalID)
	if err != nil {
		return nil, err
	}

	if input.Body == "" && input.FileURL == "" {
		return nil, errors.BadRequest("Message must have text or an attachment", nil)
	}

	if allowed, wait := uc.limiter.Allow(userID, "send_message"); !allowed {
		logger.Warn("Rate limit hit for user %s sending message, retry in %v", userID, wait)
		return nil, errors.TooManyRequests("You are sending messages too quickly")
	}

	recipientID, err := uc.otherParty(ctx, actor, proposal)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ID:          uc.node.Generate(),
		ProposalID:  proposalID,
		SenderID:    userID,
		RecipientID: recipientID,
		Body:        input.Body,
		FileURL:     input.FileURL,
		FileName:    input.FileName,
		FileType:    input.FileType,
		FileSize:    input.FileSize,
		Timestamp:   time.Now(),
		Read:        false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	frame, err := ws.NewEvent(ws.EventNewMessage, message)
	if err != nil {
		return nil, errors.Internal("Failed to encode message event", err)
	}
	uc.registry.Broadcast(ws.RoomKey(campaignID, proposalID), frame)

	return message, nil
}

// History returns the conversation after the given cursor in id order.
// Cursor zero means the full history.
func (uc *ChatUseCase) History(ctx context.Context, userID, campaignID, proposalID string, afterID int64) ([]*entity.ChatMessage, error) {
	if _, _, err := uc.resolver.Authorize(ctx, userID, campaignID, proposalID); err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.ListByProposal(ctx, proposalID, afterID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*entity.ChatMessage{}
	}
	return messages, nil
}

// MarkRead flags the given messages as read by this user and tells the room
// which ones actually changed. Messages sent by the reader, already-read
// messages and unknown ids are skipped, so retries are safe.
func (uc *ChatUseCase) MarkRead(ctx context.Context, userID, campaignID, proposalID string, ids []int64) ([]int64, error) {
	if _, _, err := uc.resolver.Authorize(ctx, userID, campaignID, proposalID); err != nil {
		return nil, err
	}

	updated, err := uc.messageRepo.MarkRead(ctx, proposalID, ids, userID)
	if err != nil {
		return nil, err
	}

	if len(updated) > 0 {
		frame, err := ws.NewEvent(ws.EventMessagesRead, MessagesReadPayload{
			ProposalID: proposalID,
			ReaderID:   userID,
			MessageIDs: updated,
		})
		if err != nil {
			return nil, errors.Internal("Failed to encode read receipt", err)
		}
		uc.registry.Broadcast(ws.RoomKey(campaignID, proposalID), frame)
	}

	return updated, nil
}

// UnreadCount reports how many messages addressed to the user are still
// unread in this conversation.
func (uc *ChatUseCase) UnreadCount(ctx context.Context, userID, campaignID, proposalID string) (int, error) {
	if _, _, err := uc.resolver.Authorize(ctx, userID, campaignID, proposalID); err != nil {
		return 0, err
	}
	return uc.messageRepo.CountUnread(ctx, proposalID, userID)
}

// otherParty maps the sending actor to the user id of the opposite side of
// the proposal.
func (uc *ChatUseCase) otherParty(ctx context.Context, actor entity.Actor, proposal *entity.Proposal) (string, error) {
	switch actor.Role {
	case entity.ActorRoleInfluencer:
		campaign, err := uc.campaignRepo.GetByID(ctx, proposal.CampaignID)
		if err != nil {
			return "", err
		}
		brand, err := uc.brandRepo.GetByID(ctx, campaign.BrandID)
		if err != nil {
			return "", err
		}
		return brand.UserID, nil
	case entity.ActorRoleBrand:
		influencer, err := uc.influencerRepo.GetByID(ctx, proposal.InfluencerID)
		if err != nil {
			return "", err
		}
		return influencer.UserID, nil
	}
	return "", errors.Forbidden("Not a participant in this conversation", nil)
}
