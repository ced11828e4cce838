package scheduling

import "github.com/avtodetail/carshop-booking/internal/domain"

// Totals считает суммарную цену и суммарную длительность основной услуги
// с дополнениями. Минуты и дни складываются раздельно, без нормализации:
// услуга на 4 дня с дополнением на 30 минут означает "4 полных рабочих дня,
// затем ещё 30 минут в рабочих часах".
func Totals(primary *domain.Service, addons []*domain.Service) (totalPrice int64, totalMinutes, totalDays int) {
	totalPrice = primary.Price
	totalMinutes = primary.DurationMinutes
	totalDays = primary.DurationDays

	for _, a := range addons {
		totalPrice += a.Price
		totalMinutes += a.DurationMinutes
		totalDays += a.DurationDays
	}

	return totalPrice, totalMinutes, totalDays
}
