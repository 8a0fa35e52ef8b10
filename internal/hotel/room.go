package hotel

// Category тип номера
type Category string

const (
	CategorySingle Category = "single"
	CategoryDouble Category = "double"
	CategorySuite  Category = "suite"
)

// Title возвращает человекочитаемое название типа номера
func (c Category) Title() string {
	switch c {
	case CategorySingle:
		return "Одноместный"
	case CategoryDouble:
		return "Двухместный"
	case CategorySuite:
		return "Люкс"
	}
	return string(c)
}

// Room номер отеля из каталога
type Room struct {
	Number        int      `yaml:"number"`
	Category      Category `yaml:"category"`
	PricePerNight int      `yaml:"price_per_night"` // руб. за ночь
	Available     bool     `yaml:"available"`
	Description   string   `yaml:"description"`
}
