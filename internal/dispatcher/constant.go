package dispatcher

// Log prefixes
const (
	LogPrefixRoute = "internal.dispatcher.Route"
)

// Fallback replies
const (
	FallbackReplyES = "Lo siento, no te he entendido. ¿Podrías reformular tu pregunta?"
	FallbackReplyEN = "I'm sorry, I didn't quite catch that. Could you rephrase?"

	ErrorReplyES = "Ha habido un problema al procesar tu mensaje. Por favor, inténtalo de nuevo."
	ErrorReplyEN = "There was a problem handling your message. Please try again."
)

// FallbackReply returns the localized "didn't understand" message.
func FallbackReply(lang string) string {
	if lang == "en" {
		return FallbackReplyEN
	}
	return FallbackReplyES
}

// ErrorReply returns the localized handler-failure message.
func ErrorReply(lang string) string {
	if lang == "en" {
		return ErrorReplyEN
	}
	return ErrorReplyES
}
