package domain

// OperationType — тип обработки операции.
//
// Закрытое перечисление: MachineSelector и DurationEstimator
// разбирают его исчерпывающим switch.
type OperationType string

const (
	// OperationMill3Axis — 3-координатное фрезерование.
	OperationMill3Axis OperationType = "3-axis"

	// OperationMill4Axis — 4-координатное фрезерование.
	OperationMill4Axis OperationType = "4-axis"

	// OperationMilling — обычное фрезерование без требований к осям.
	OperationMilling OperationType = "milling"

	// OperationTurning — токарная обработка.
	OperationTurning OperationType = "turning"
)

// IsValid возвращает true для известного типа операции.
func (t OperationType) IsValid() bool {
	switch t {
	case OperationMill3Axis, OperationMill4Axis, OperationMilling, OperationTurning:
		return true
	default:
		return false
	}
}

// SetupType возвращает тип наладки для операции.
// Станок, уже налаженный под тот же тип, требует меньше времени переналадки.
func (t OperationType) SetupType() string {
	return string(t) + "-setup"
}

// OperationStatus — статус выполнения операции в цеху.
//
// Жизненный цикл:
//
//	pending → in-progress → completed
//
// Статус меняет цеховая отчётность (внешняя система); планировщик
// только читает его, чтобы пропускать уже выполненные операции.
type OperationStatus string

const (
	// OperationStatusPending — операция ожидает выполнения.
	OperationStatusPending OperationStatus = "pending"

	// OperationStatusInProgress — операция выполняется.
	OperationStatusInProgress OperationStatus = "in-progress"

	// OperationStatusCompleted — операция выполнена полностью.
	OperationStatusCompleted OperationStatus = "completed"
)

// PlanningStatus — статус результата планирования.
//
// Жизненный цикл:
//
//	planned → in-progress → completed
//	        ↘ rescheduled (при изменении начала или длительности,
//	          возвращается в planned/in-progress)
type PlanningStatus string

const (
	// PlanningStatusPlanned — операция запланирована.
	PlanningStatusPlanned PlanningStatus = "planned"

	// PlanningStatusInProgress — операция выполняется (наладка завершена).
	PlanningStatusInProgress PlanningStatus = "in-progress"

	// PlanningStatusCompleted — операция выполнена.
	PlanningStatusCompleted PlanningStatus = "completed"

	// PlanningStatusRescheduled — план операции был изменён.
	PlanningStatusRescheduled PlanningStatus = "rescheduled"
)

// IsTerminal возвращает true, если результат больше не перепланируется.
func (s PlanningStatus) IsTerminal() bool {
	return s == PlanningStatusCompleted
}

// EntityType — тип сущности, на которую ссылается событие или оповещение.
type EntityType string

const (
	EntityMachine   EntityType = "machine"
	EntityOperator  EntityType = "operator"
	EntityOrder     EntityType = "order"
	EntityOperation EntityType = "operation"
	EntitySystem    EntityType = "system"
)

// ForceMajeureType — вид форс-мажорного события.
type ForceMajeureType string

const (
	ForceMajeureMachineBreakdown ForceMajeureType = "machine_breakdown"
	ForceMajeureToolShortage     ForceMajeureType = "tool_shortage"
	ForceMajeureOperatorAbsence  ForceMajeureType = "operator_absence"
	ForceMajeureMaterialShortage ForceMajeureType = "material_shortage"
	ForceMajeureQualityIssue     ForceMajeureType = "quality_issue"
	ForceMajeurePowerOutage      ForceMajeureType = "power_outage"
	ForceMajeureOther            ForceMajeureType = "other"
)

// ForceMajeureStatus — статус форс-мажорного события.
type ForceMajeureStatus string

const (
	ForceMajeureActive            ForceMajeureStatus = "active"
	ForceMajeureResolved          ForceMajeureStatus = "resolved"
	ForceMajeurePartiallyResolved ForceMajeureStatus = "partially_resolved"
)

// AlertType — вид оповещения.
type AlertType string

const (
	AlertDeadlineRisk         AlertType = "deadline_risk"
	AlertPerformanceDeviation AlertType = "performance_deviation"
	AlertForceMajeure         AlertType = "force_majeure"
	AlertResourceShortage     AlertType = "resource_shortage"
	AlertQueueOverload        AlertType = "queue_overload"
	AlertSystemWarning        AlertType = "system_warning"
)

// AlertSeverity — важность оповещения.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// AlertStatus — статус обработки оповещения.
//
// Жизненный цикл управляется хост-приложением:
//
//	new → acknowledged → in_progress → resolved
//	    ↘ ignored
type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "new"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusInProgress   AlertStatus = "in_progress"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusIgnored      AlertStatus = "ignored"
)
