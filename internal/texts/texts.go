package texts

import (
	"maison/pkg/config"
	"maison/pkg/utils"
)

type TextKey = string

const (
	// Toasts
	LoginSuccess       TextKey = "login_success"
	LoginFailed        TextKey = "login_failed"
	LoginFailedHint    TextKey = "login_failed_hint"
	RegisterSuccess    TextKey = "register_success"
	RegisterFailed     TextKey = "register_failed"
	RegisterFailedHint TextKey = "register_failed_hint"
	LoggedOut          TextKey = "logged_out"
	SessionExpired     TextKey = "session_expired"
	LoginToCheckout    TextKey = "login_to_checkout"
	OrderPlaced        TextKey = "order_placed"
	OrderPlacedHint    TextKey = "order_placed_hint"
	CheckoutFailed     TextKey = "checkout_failed"
	AccessDenied       TextKey = "access_denied"
	OrdersLoadFailed   TextKey = "orders_load_failed"
	StatusUpdated      TextKey = "status_updated"
	StatusUpdateFailed TextKey = "status_update_failed"
	Error              TextKey = "error"
	LoginRequired      TextKey = "login_required"
	EnterTelegramID    TextKey = "enter_telegram_id"
	TelegramLinked     TextKey = "telegram_linked"
	TelegramLinkedHint TextKey = "telegram_linked_hint"
	TelegramLinkFailed TextKey = "telegram_link_failed"
	CheckAndRetry      TextKey = "check_and_retry"
	Busy               TextKey = "busy"

	// Validation
	EmailRequired    TextKey = "email_required"
	PasswordRequired TextKey = "password_required"
	AddressRequired  TextKey = "address_required"
	PhoneRequired    TextKey = "phone_required"
	CartEmpty        TextKey = "cart_empty"
	TelegramIDFormat TextKey = "telegram_id_format"

	// Bot
	BotWelcome    TextKey = "bot_welcome"
	BotLink       TextKey = "bot_link"
	BotHelp       TextKey = "bot_help"
	BotUnknown    TextKey = "bot_unknown"
	BotRetry      TextKey = "bot_retry"
	BotNoUsername TextKey = "bot_no_username"
)

var MapText = map[TextKey]utils.Language{
	LoginSuccess: {
		RU: "Вход выполнен успешно!",
		EN: "Signed in successfully!",
	},
	LoginFailed: {
		RU: "Ошибка входа",
		EN: "Sign-in failed",
	},
	LoginFailedHint: {
		RU: "Проверьте данные",
		EN: "Check your details",
	},
	RegisterSuccess: {
		RU: "Регистрация успешна!",
		EN: "Registration complete!",
	},
	RegisterFailed: {
		RU: "Ошибка регистрации",
		EN: "Registration failed",
	},
	RegisterFailedHint: {
		RU: "Попробуйте снова",
		EN: "Please try again",
	},
	LoggedOut: {
		RU: "Вы вышли из аккаунта",
		EN: "You have signed out",
	},
	SessionExpired: {
		RU: "Сессия истекла, войдите снова",
		EN: "Session expired, please sign in again",
	},
	LoginToCheckout: {
		RU: "Войдите, чтобы оформить заказ",
		EN: "Sign in to place an order",
	},
	OrderPlaced: {
		RU: "Заказ оформлен!",
		EN: "Order placed!",
	},
	OrderPlacedHint: {
		RU: "Мы свяжемся с вами в ближайшее время",
		EN: "We will contact you shortly",
	},
	CheckoutFailed: {
		RU: "Ошибка оформления",
		EN: "Checkout failed",
	},
	AccessDenied: {
		RU: "Доступ запрещён",
		EN: "Access denied",
	},
	OrdersLoadFailed: {
		RU: "Ошибка загрузки заказов",
		EN: "Failed to load orders",
	},
	StatusUpdated: {
		RU: "Статус обновлён",
		EN: "Status updated",
	},
	StatusUpdateFailed: {
		RU: "Ошибка обновления",
		EN: "Update failed",
	},
	Error: {
		RU: "Ошибка",
		EN: "Error",
	},
	LoginRequired: {
		RU: "Войдите в систему",
		EN: "Please sign in",
	},
	EnterTelegramID: {
		RU: "Введите Telegram ID",
		EN: "Enter your Telegram ID",
	},
	TelegramLinked: {
		RU: "Telegram привязан!",
		EN: "Telegram linked!",
	},
	TelegramLinkedHint: {
		RU: "Теперь вы будете получать уведомления о заказах",
		EN: "You will now receive order notifications",
	},
	TelegramLinkFailed: {
		RU: "Ошибка привязки",
		EN: "Linking failed",
	},
	CheckAndRetry: {
		RU: "Проверьте данные и попробуйте снова",
		EN: "Check the details and try again",
	},
	Busy: {
		RU: "Подождите, запрос уже выполняется",
		EN: "Please wait, a request is already running",
	},
	EmailRequired: {
		RU: "Укажите email",
		EN: "Email is required",
	},
	PasswordRequired: {
		RU: "Укажите пароль",
		EN: "Password is required",
	},
	AddressRequired: {
		RU: "Укажите адрес доставки",
		EN: "Delivery address is required",
	},
	PhoneRequired: {
		RU: "Укажите телефон",
		EN: "Phone is required",
	},
	CartEmpty: {
		RU: "Корзина пуста",
		EN: "Your cart is empty",
	},
	TelegramIDFormat: {
		RU: "Telegram ID должен быть числом",
		EN: "Telegram ID must be a number",
	},
	BotWelcome: {
		RU: "👋 Добро пожаловать в MAISON!\n\n" +
			"Ваш Telegram ID: `%d`\n" +
			"Username: @%s\n\n" +
			"Используйте кнопку 'Привязать Telegram' на сайте для связи аккаунтов.\n\n" +
			"После привязки вы будете получать уведомления о ваших заказах здесь.",
		EN: "👋 Welcome to MAISON!\n\n" +
			"Your Telegram ID: `%d`\n" +
			"Username: @%s\n\n" +
			"Use the 'Link Telegram' button on the site to connect your accounts.\n\n" +
			"Once linked you will receive your order notifications here.",
	},
	BotLink: {
		RU: "📱 Привязка аккаунта\n\n" +
			"Ваш Telegram ID: `%d`\n\n" +
			"Войдите на сайт MAISON и нажмите кнопку 'Привязать Telegram' в личном кабинете.",
		EN: "📱 Account linking\n\n" +
			"Your Telegram ID: `%d`\n\n" +
			"Sign in on the MAISON site and press 'Link Telegram' in your profile.",
	},
	BotHelp: {
		RU: "📖 Доступные команды:\n\n" +
			"/start - Начало работы с ботом\n" +
			"/link - Привязка аккаунта\n" +
			"/help - Справка по командам\n\n" +
			"После привязки аккаунта вы будете получать уведомления о статусе ваших заказов.",
		EN: "📖 Available commands:\n\n" +
			"/start - Get started\n" +
			"/link - Link your account\n" +
			"/help - Command help\n\n" +
			"Once your account is linked you will receive order status notifications.",
	},
	BotUnknown: {
		RU: "❓ Неизвестная команда. Используйте /help для списка доступных команд.",
		EN: "❓ Unknown command. Use /help to see the available commands.",
	},
	BotRetry: {
		RU: "Что-то пошло не так, попробуйте снова",
		EN: "Something went wrong, please try again",
	},
	BotNoUsername: {
		RU: "не указан",
		EN: "not set",
	},
}

func Get(lang utils.Lang, key TextKey) string {
	return MapText[key].By(lang)
}

// Lang is the configured UI language, Russian unless ui.lang says otherwise.
func Lang(cfg config.IConfig) utils.Lang {
	if lang, ok := utils.ParseLang(cfg.GetString("ui.lang")); ok {
		return lang
	}
	return utils.RU
}
