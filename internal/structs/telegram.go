package structs

type LinkTelegram struct {
	UserID           int64  `json:"user_id"`
	TelegramID       int64  `json:"telegram_id"`
	TelegramUsername string `json:"telegram_username"`
}

type LinkTelegramRequest struct {
	TelegramID       string `json:"telegram_id"`
	TelegramUsername string `json:"telegram_username"`
}

type NotifyOrder struct {
	OrderID        int64       `json:"order_id"`
	UserName       string      `json:"user_name"`
	TotalAmount    int64       `json:"total_amount"`
	Items          []OrderItem `json:"items"`
	TelegramChatID int64       `json:"telegram_chat_id"`
}

type TelegramStatus struct {
	Linked   bool   `json:"linked"`
	ID       int64  `json:"telegram_id,omitempty"`
	Username string `json:"telegram_username,omitempty"`
	BotLink  string `json:"bot_link"`
}
