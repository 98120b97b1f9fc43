package session

import "errors"

// ErrStoredCredentialRejected именованный вид ошибки начальной загрузки:
// сохранённый токен был отвергнут при запросе профиля. По контракту Bootstrap
// такая ошибка не показывается пользователю — сессия тихо завершается, токен
// удаляется. Вид нужен, чтобы во внутренней диагностике и тестах отличать
// отвергнутый токен от транспортного сбоя.
var ErrStoredCredentialRejected = errors.New("stored credential rejected")

// Тексты запасных сообщений операций сессии. Сервисное сообщение бэкенда,
// если оно есть, имеет приоритет.
const (
	fallbackLogin        = "Login failed"
	fallbackRegister     = "Registration failed"
	fallbackVerify       = "Email verification failed"
	fallbackResendVerify = "Failed to resend verification email"
	fallbackUpdate       = "Profile update failed"
)
