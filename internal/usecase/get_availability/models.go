package get_availability

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceCode string    // Код основной услуги
	AddonCodes  []string  // Коды дополнений (опционально)
	Date        time.Time // Дата в часовом поясе магазина (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time // Дата, на которую запрашивались слоты
	ServiceCode string    // Код основной услуги
	AddonCodes  []string  // Коды дополнений
	TotalPrice  int64     // Суммарная цена комбинации услуг
	Slots       []Slot    // Список доступных слотов
}

// Slot модель доступного интервала записи (локальное время магазина)
type Slot struct {
	Start time.Time // Начало работ
	End   time.Time // Спроектированное окончание (может лежать в другом дне)
}
