package vibe

import "context"

// Chat is a handle to conversational state held by the model provider.
// Each call to Send continues the same conversation.
type Chat interface {
	Send(ctx context.Context, text string) (string, error)
}

// ChatProvider is a strategy pattern interface for model providers. It
// creates new conversations configured with a model and system instruction.
type ChatProvider interface {
	NewChat(ctx context.Context, cfg ChatConfig) (Chat, error)
}

// ChatConfig carries the fixed parameters of a conversation.
// The provider uses its own default model when Model is empty.
type ChatConfig struct {
	Model             string
	SystemInstruction string
}

// DefaultModel is the model the assistant talks to unless overridden.
const DefaultModel = "gemini-2.5-flash"

// DefaultSystemInstruction is the VIBE persona: tone, emoji and the facts
// about the event the assistant is allowed to state.
const DefaultSystemInstruction = `Ты 'VIBE' (ВАЙБ), AI-ассистент хакатона Vibe Coding Hackathon.
Организатор: сообщество vibecod3rs.
Старт: 30 ноября.
Локация: Онлайн и Telegram.

Тон: Киберпанк, дружелюбный, технический, но расслабленный ("на потоке"). Используй эмодзи: ⚡️, 🔮, 💻, 🌀.

Ключевая информация:
- Категории (Треки): Игры, Телеграм-боты, Веб-сайты.
- Призы: Участие бесплатное. Финалисты получают скидку на курс по вайб-кодингу. Победитель (1 место) получает курс бесплатно.
- Ссылка на регистрацию: Google Doc форма.
- Сообщество: vibecod3rs в Telegram.

Отвечай кратко (до 50 слов). Если спрашивают про регистрацию, отправляй к кнопке на сайте.`

// DefaultChatConfig returns the configuration used for the hackathon
// assistant.
func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		Model:             DefaultModel,
		SystemInstruction: DefaultSystemInstruction,
	}
}
