package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert — оповещение о риске или отклонении.
//
// Создаётся AlertEvaluator'ом (риск дедлайна, перегрузка очереди)
// или обработкой форс-мажора. Подтверждение и разрешение — забота
// хост-приложения.
type Alert struct {
	// ID — уникальный идентификатор оповещения.
	ID uuid.UUID `json:"id"`

	// Type — вид оповещения.
	Type AlertType `json:"type"`

	// Severity — важность.
	Severity AlertSeverity `json:"severity"`

	// Title — краткий заголовок.
	Title string `json:"title"`

	// Description — описание в свободной форме.
	Description string `json:"description"`

	// EntityType — тип затронутой сущности.
	EntityType EntityType `json:"entity_type"`

	// EntityID — идентификатор затронутой сущности.
	EntityID string `json:"entity_id,omitempty"`

	// Status — статус обработки.
	Status AlertStatus `json:"status"`

	// CreatedAt — время создания.
	CreatedAt time.Time `json:"created_at"`

	// ResolvedAt — время разрешения.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// NewAlert создаёт оповещение со сгенерированным ID и статусом new.
func NewAlert(t AlertType, severity AlertSeverity, title, description string, entityType EntityType, entityID string, now time.Time) Alert {
	return Alert{
		ID:          uuid.New(),
		Type:        t,
		Severity:    severity,
		Title:       title,
		Description: description,
		EntityType:  entityType,
		EntityID:    entityID,
		Status:      AlertStatusNew,
		CreatedAt:   now,
	}
}
