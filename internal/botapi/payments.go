package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// Invoice — счёт на оплату.
// Суммы во всех платёжных типах указаны в минимальных единицах валюты.
type Invoice struct {
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	StartParameter string       `json:"start_parameter"`
	Currency       CurrencyCode `json:"currency"`
	TotalAmount    int64        `json:"total_amount"`
}

// SuccessfulPayment — служебное сообщение об успешной оплате.
type SuccessfulPayment struct {
	Currency                   CurrencyCode    `json:"currency"`
	TotalAmount                int64           `json:"total_amount"`
	InvoicePayload             string          `json:"invoice_payload"`
	SubscriptionExpirationDate *wire.Timestamp `json:"subscription_expiration_date,omitempty"`
	IsRecurring                bool            `json:"is_recurring,omitempty"`
	IsFirstRecurring           bool            `json:"is_first_recurring,omitempty"`
	ShippingOptionID           string          `json:"shipping_option_id,omitempty"`
	OrderInfo                  *OrderInfo      `json:"order_info,omitempty"`
	TelegramPaymentChargeID    string          `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID    string          `json:"provider_payment_charge_id"`
}

// RefundedPayment — служебное сообщение о возврате платежа.
type RefundedPayment struct {
	Currency                CurrencyCode `json:"currency"`
	TotalAmount             int64        `json:"total_amount"`
	InvoicePayload          string       `json:"invoice_payload"`
	TelegramPaymentChargeID string       `json:"telegram_payment_charge_id"`
	ProviderPaymentChargeID string       `json:"provider_payment_charge_id,omitempty"`
}

// ShippingAddress — адрес доставки.
type ShippingAddress struct {
	CountryCode CountryCode `json:"country_code"`
	State       string      `json:"state"`
	City        string      `json:"city"`
	StreetLine1 string      `json:"street_line1"`
	StreetLine2 string      `json:"street_line2"`
	PostCode    string      `json:"post_code"`
}

type OrderInfo struct {
	Name            string           `json:"name,omitempty"`
	PhoneNumber     string           `json:"phone_number,omitempty"`
	Email           string           `json:"email,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

// ShippingQuery — запрос стоимости доставки.
type ShippingQuery struct {
	ID              string          `json:"id"`
	From            User            `json:"from"`
	InvoicePayload  string          `json:"invoice_payload"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
}

// PreCheckoutQuery — запрос подтверждения перед оплатой. Бот должен ответить
// в течение 10 секунд.
type PreCheckoutQuery struct {
	ID               string       `json:"id"`
	From             User         `json:"from"`
	Currency         CurrencyCode `json:"currency"`
	TotalAmount      int64        `json:"total_amount"`
	InvoicePayload   string       `json:"invoice_payload"`
	ShippingOptionID string       `json:"shipping_option_id,omitempty"`
	OrderInfo        *OrderInfo   `json:"order_info,omitempty"`
}
