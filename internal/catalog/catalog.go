package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kasuf/thewho-planner/internal/domain"
)

// Ошибки валидации каталога.
var (
	ErrEmptyCatalog     = errors.New("каталог станков пуст")
	ErrDuplicateMachine = errors.New("дубликат имени станка")
	ErrMachineNotFound  = errors.New("станок не найден в каталоге")
)

// Catalog — неизменяемый набор профилей станков.
// Порядок станков сохраняется: при равной производительности
// планировщик выбирает первый подходящий по каталогу.
type Catalog struct {
	machines []domain.MachineProfile
	byName   map[string]int
}

type catalogFile struct {
	Machines []domain.MachineProfile `yaml:"machines"`
}

// New собирает каталог из списка профилей и проверяет их.
func New(machines []domain.MachineProfile) (*Catalog, error) {
	if len(machines) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		machines: make([]domain.MachineProfile, len(machines)),
		byName:   make(map[string]int, len(machines)),
	}
	copy(c.machines, machines)

	for i := range c.machines {
		m := &c.machines[i]
		if m.Name == "" {
			return nil, fmt.Errorf("станок #%d: пустое имя", i)
		}
		if _, ok := c.byName[m.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMachine, m.Name)
		}
		if m.EfficiencyFactor <= 0 {
			return nil, fmt.Errorf("станок %q: коэффициент производительности должен быть > 0, получен %v", m.Name, m.EfficiencyFactor)
		}
		if m.HistoricalDowntimeProbability < 0 || m.HistoricalDowntimeProbability > 1 {
			return nil, fmt.Errorf("станок %q: вероятность простоя должна быть в [0, 1], получена %v", m.Name, m.HistoricalDowntimeProbability)
		}
		if m.WorkingMinutesPerDay <= 0 {
			return nil, fmt.Errorf("станок %q: рабочий лимит в минутах должен быть > 0, получен %d", m.Name, m.WorkingMinutesPerDay)
		}
		c.byName[m.Name] = i
	}
	return c, nil
}

// Load читает каталог из YAML-файла.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение каталога %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("разбор каталога %s: %w", path, err)
	}

	c, err := New(file.Machines)
	if err != nil {
		return nil, fmt.Errorf("каталог %s: %w", path, err)
	}
	return c, nil
}

// Machines возвращает копию списка профилей в порядке каталога.
func (c *Catalog) Machines() []domain.MachineProfile {
	out := make([]domain.MachineProfile, len(c.machines))
	copy(out, c.machines)
	return out
}

// Active возвращает только действующие станки.
func (c *Catalog) Active() []domain.MachineProfile {
	out := make([]domain.MachineProfile, 0, len(c.machines))
	for _, m := range c.machines {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

// Get возвращает профиль станка по имени.
func (c *Catalog) Get(name string) (domain.MachineProfile, error) {
	i, ok := c.byName[name]
	if !ok {
		return domain.MachineProfile{}, fmt.Errorf("%w: %q", ErrMachineNotFound, name)
	}
	return c.machines[i], nil
}

// Len возвращает число станков в каталоге.
func (c *Catalog) Len() int {
	return len(c.machines)
}

// Without возвращает новый каталог без указанного станка.
// Используется при форс-мажоре: перепланирование идёт по каталогу,
// из которого сломанный станок исключён.
func (c *Catalog) Without(name string) (*Catalog, error) {
	if _, ok := c.byName[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMachineNotFound, name)
	}
	rest := make([]domain.MachineProfile, 0, len(c.machines)-1)
	for _, m := range c.machines {
		if m.Name != name {
			rest = append(rest, m)
		}
	}
	return New(rest)
}
