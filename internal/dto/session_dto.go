package dto

import "echomart-be/pkg/reconcile"

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
	Token     string `json:"token"`
}

type ChatMessageRequest struct {
	Sender string `json:"sender" validate:"required,oneof=local remote"`
	Text   string `json:"text" validate:"required"`
}

type AppendMessagesRequest struct {
	Messages []ChatMessageRequest `json:"messages" validate:"required,min=1,dive"`
}

type AppendMessagesResponse struct {
	CartChanged bool               `json:"cart_changed"`
	OrderPlaced bool               `json:"order_placed"`
	View        reconcile.CartView `json:"view"`
}
