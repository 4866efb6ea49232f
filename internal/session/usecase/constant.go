package usecase

// Log prefixes
const (
	LogPrefixChat = "internal.session.usecase.Chat"
)

// Localized replies
const (
	ClosedReplyES = "Tu estancia ha finalizado y este chat ya no está activo. ¡Esperamos verte pronto de nuevo!"
	ClosedReplyEN = "Your stay has ended and this chat is no longer active. We hope to see you again soon!"
)

func closedReply(lang string) string {
	if lang == "en" {
		return ClosedReplyEN
	}
	return ClosedReplyES
}
