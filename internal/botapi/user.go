package botapi

// User представляет пользователя или бота Telegram.
// See https://core.telegram.org/bots/api#user
type User struct {
	ID                      UserID       `json:"id"`
	IsBot                   bool         `json:"is_bot"`
	FirstName               string       `json:"first_name"`
	LastName                string       `json:"last_name,omitempty"`
	Username                string       `json:"username,omitempty"`
	LanguageCode            LanguageCode `json:"language_code,omitempty"`
	IsPremium               bool         `json:"is_premium,omitempty"`
	AddedToAttachmentMenu   bool         `json:"added_to_attachment_menu,omitempty"`
	CanJoinGroups           bool         `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages bool         `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   bool         `json:"supports_inline_queries,omitempty"`
	CanConnectToBusiness    bool         `json:"can_connect_to_business,omitempty"`
	HasMainWebApp           bool         `json:"has_main_web_app,omitempty"`
}

// FullName возвращает имя и фамилию через пробел.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
