package botapi

import "github.com/letsssgooo/botapi/internal/wire"

// BackgroundFill — способ заливки фона.
// See https://core.telegram.org/bots/api#backgroundfill
type BackgroundFill struct {
	Value BackgroundFillVariant
}

type BackgroundFillVariant interface {
	isBackgroundFill()
}

// BackgroundFillSolid — заливка одним цветом в формате RGB24.
type BackgroundFillSolid struct {
	Color int `json:"color"`
}

// BackgroundFillGradient — градиент из двух цветов.
type BackgroundFillGradient struct {
	TopColor      int `json:"top_color"`
	BottomColor   int `json:"bottom_color"`
	RotationAngle int `json:"rotation_angle"`
}

// BackgroundFillFreeformGradient — градиент из трёх или четырёх цветов.
type BackgroundFillFreeformGradient struct {
	Colors []int `json:"colors"`
}

func (*BackgroundFillSolid) isBackgroundFill()            {}
func (*BackgroundFillGradient) isBackgroundFill()         {}
func (*BackgroundFillFreeformGradient) isBackgroundFill() {}

var backgroundFills = wire.NewSet[BackgroundFillVariant]("background fill", "type").
	Register("solid", func() BackgroundFillVariant { return &BackgroundFillSolid{} }).
	Register("gradient", func() BackgroundFillVariant { return &BackgroundFillGradient{} }).
	Register("freeform_gradient", func() BackgroundFillVariant { return &BackgroundFillFreeformGradient{} })

func (f BackgroundFill) MarshalJSON() ([]byte, error) {
	return backgroundFills.Encode(f.Value)
}

func (f *BackgroundFill) UnmarshalJSON(data []byte) error {
	v, err := backgroundFills.Decode(data)
	if err != nil {
		return err
	}
	f.Value = v

	return nil
}

// BackgroundType — тип фона чата.
// See https://core.telegram.org/bots/api#backgroundtype
type BackgroundType struct {
	Value BackgroundTypeVariant
}

type BackgroundTypeVariant interface {
	isBackgroundType()
}

// BackgroundTypeFill — фон с заливкой.
type BackgroundTypeFill struct {
	Fill             BackgroundFill `json:"fill"`
	DarkThemeDimming int            `json:"dark_theme_dimming"`
}

// BackgroundTypeWallpaper — обои из файла.
type BackgroundTypeWallpaper struct {
	Document         Document `json:"document"`
	DarkThemeDimming int      `json:"dark_theme_dimming"`
	IsBlurred        bool     `json:"is_blurred,omitempty"`
	IsMoving         bool     `json:"is_moving,omitempty"`
}

// BackgroundTypePattern — узор поверх заливки.
type BackgroundTypePattern struct {
	Document   Document       `json:"document"`
	Fill       BackgroundFill `json:"fill"`
	Intensity  int            `json:"intensity"`
	IsInverted bool           `json:"is_inverted,omitempty"`
	IsMoving   bool           `json:"is_moving,omitempty"`
}

// BackgroundTypeChatTheme — фон из темы чата.
type BackgroundTypeChatTheme struct {
	ThemeName string `json:"theme_name"`
}

func (*BackgroundTypeFill) isBackgroundType()      {}
func (*BackgroundTypeWallpaper) isBackgroundType() {}
func (*BackgroundTypePattern) isBackgroundType()   {}
func (*BackgroundTypeChatTheme) isBackgroundType() {}

var backgroundTypes = wire.NewSet[BackgroundTypeVariant]("background type", "type").
	Register("fill", func() BackgroundTypeVariant { return &BackgroundTypeFill{} }).
	Register("wallpaper", func() BackgroundTypeVariant { return &BackgroundTypeWallpaper{} }).
	Register("pattern", func() BackgroundTypeVariant { return &BackgroundTypePattern{} }).
	Register("chat_theme", func() BackgroundTypeVariant { return &BackgroundTypeChatTheme{} })

func (t BackgroundType) MarshalJSON() ([]byte, error) {
	return backgroundTypes.Encode(t.Value)
}

func (t *BackgroundType) UnmarshalJSON(data []byte) error {
	v, err := backgroundTypes.Decode(data)
	if err != nil {
		return err
	}
	t.Value = v

	return nil
}

// ChatBackground — фон чата, приходит в служебном сообщении chat_background_set.
type ChatBackground struct {
	Type BackgroundType `json:"type"`
}
