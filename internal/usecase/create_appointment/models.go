package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	CustomerName string    // Имя клиента
	Phone        string    // Контактный телефон
	CarInfo      string    // Марка/модель/номер, свободный текст
	ServiceCode  string    // Код основной услуги
	AddonCodes   []string  // Коды дополнений (опционально)
	Start        time.Time // Начало работ в часовом поясе магазина
	Notes        string    // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID                 int64     // ID созданной записи
	CustomerName       string    // Имя клиента
	Phone              string    // Телефон
	CarInfo            string    // Автомобиль
	PrimaryServiceCode string    // Код основной услуги
	ServiceName        string    // Название основной услуги
	AddonCodes         []string  // Коды дополнений
	ResourceType       string    // Категория ресурса основной услуги
	Start              time.Time // Начало работ (UTC)
	End                time.Time // Спроектированное окончание (UTC)
	TotalPrice         int64     // Суммарная цена
	Status             string    // Статус записи
	Notes              string    // Заметки
	CreatedAt          time.Time // Время создания
	UpdatedAt          time.Time // Время обновления
}
