package catalog

import "github.com/kasuf/thewho-planner/internal/domain"

// Default возвращает встроенный каталог станков цеха.
// Коэффициенты производительности и вероятности простоя взяты из
// накопленной статистики загрузки; лимит 960 минут — две смены.
func Default() *Catalog {
	c, err := New([]domain.MachineProfile{
		{
			Name:                          "Doosan Yashana",
			Supports3Axis:                 true,
			Supports4Axis:                 true,
			SupportsMilling:               true,
			EfficiencyFactor:              1.0,
			HistoricalDowntimeProbability: 0.08,
			WorkingMinutesPerDay:          960,
			IsActive:                      true,
		},
		{
			Name:                          "Doosan Hadasha",
			Supports3Axis:                 true,
			Supports4Axis:                 true,
			SupportsMilling:               true,
			EfficiencyFactor:              1.1,
			HistoricalDowntimeProbability: 0.05,
			WorkingMinutesPerDay:          960,
			IsActive:                      true,
		},
		{
			Name:                          "Doosan 3",
			Supports3Axis:                 true,
			SupportsMilling:               true,
			EfficiencyFactor:              0.9,
			HistoricalDowntimeProbability: 0.12,
			WorkingMinutesPerDay:          960,
			IsActive:                      true,
		},
		{
			Name:                          "Pinnacle Gdola",
			Supports3Axis:                 true,
			Supports4Axis:                 true,
			SupportsMilling:               true,
			EfficiencyFactor:              1.2,
			HistoricalDowntimeProbability: 0.06,
			WorkingMinutesPerDay:          960,
			IsActive:                      true,
		},
		{
			Name:                          "Mitsubishi",
			Supports3Axis:                 true,
			SupportsMilling:               true,
			EfficiencyFactor:              0.8,
			HistoricalDowntimeProbability: 0.15,
			WorkingMinutesPerDay:          960,
			IsActive:                      true,
		},
		{
			Name:                          "Okuma",
			SupportsTurning:               true,
			EfficiencyFactor:              1.0,
			HistoricalDowntimeProbability: 0.07,
			WorkingMinutesPerDay:          960,
			IsActive:                      true,
		},
		{
			Name:                          "JonFord",
			SupportsTurning:               true,
			EfficiencyFactor:              0.85,
			HistoricalDowntimeProbability: 0.10,
			WorkingMinutesPerDay:          960,
			IsActive:                      true,
		},
	})
	if err != nil {
		// Встроенный каталог проверен тестами, ошибка здесь невозможна.
		panic(err)
	}
	return c
}
