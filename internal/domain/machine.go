package domain

// MachineProfile — профиль возможностей станка.
//
// Профили живут в каталоге (catalog.Catalog), который только читается.
// Текущий тип наладки станка движок хранит отдельно, в контексте
// проходa планирования, поэтому профиль безопасно разделять между
// параллельными проходами.
type MachineProfile struct {
	// Name — имя станка, уникально в каталоге.
	Name string `json:"name" yaml:"name"`

	// Supports3Axis — станок поддерживает 3-координатное фрезерование.
	Supports3Axis bool `json:"supports_3axis" yaml:"supports_3axis"`

	// Supports4Axis — станок поддерживает 4-координатное фрезерование.
	Supports4Axis bool `json:"supports_4axis" yaml:"supports_4axis"`

	// SupportsMilling — станок фрезерный.
	SupportsMilling bool `json:"supports_milling" yaml:"supports_milling"`

	// SupportsTurning — станок токарный.
	SupportsTurning bool `json:"supports_turning" yaml:"supports_turning"`

	// EfficiencyFactor — коэффициент производительности (> 0, 1.0 — базовый).
	// Время обработки делится на этот коэффициент.
	EfficiencyFactor float64 `json:"efficiency_factor" yaml:"efficiency_factor"`

	// HistoricalDowntimeProbability — историческая вероятность простоя (0..1).
	// Определяет буферное время.
	HistoricalDowntimeProbability float64 `json:"historical_downtime_probability" yaml:"historical_downtime_probability"`

	// WorkingMinutesPerDay — рабочий лимит станка в минутах за день
	// (дневная + ночная смена).
	WorkingMinutesPerDay int `json:"working_minutes_per_day" yaml:"working_minutes_per_day"`

	// IsActive — станок в строю. Неактивные станки не получают операций.
	IsActive bool `json:"is_active" yaml:"is_active"`
}

// Supports возвращает true, если станок способен выполнить операцию данного типа.
func (m *MachineProfile) Supports(t OperationType) bool {
	switch t {
	case OperationMill3Axis:
		return m.Supports3Axis && m.SupportsMilling
	case OperationMill4Axis:
		return m.Supports4Axis && m.SupportsMilling
	case OperationMilling:
		return m.SupportsMilling
	case OperationTurning:
		return m.SupportsTurning
	default:
		return false
	}
}
