package engine

import (
	"github.com/kasuf/thewho-planner/internal/domain"
)

// CompatibleMachines возвращает активные станки, способные выполнить
// операцию данного типа. Порядок кандидатов сохраняется — он служит
// tie-break'ом при равной производительности.
func CompatibleMachines(op *domain.Operation, candidates []domain.MachineProfile) []domain.MachineProfile {
	compatible := make([]domain.MachineProfile, 0, len(candidates))
	for _, m := range candidates {
		if m.IsActive && m.Supports(op.Type) {
			compatible = append(compatible, m)
		}
	}
	return compatible
}

// SelectMachine подбирает станок для операции:
//
//  1. Кандидаты фильтруются по совместимости типа операции и активности.
//  2. Предпочтительный станок операции выбирается, если он в списке.
//  3. Иначе выбирается станок с наибольшим коэффициентом
//     производительности; при равенстве — первый по порядку каталога.
//
// Пустой отфильтрованный список — ErrNoCompatibleMachine. Для прохода
// планирования это нефатальное условие: операция пропускается.
func SelectMachine(op *domain.Operation, candidates []domain.MachineProfile) (*domain.MachineProfile, error) {
	compatible := CompatibleMachines(op, candidates)
	if len(compatible) == 0 {
		return nil, ErrNoCompatibleMachine
	}

	if op.PreferredMachine != "" {
		for i := range compatible {
			if compatible[i].Name == op.PreferredMachine {
				return &compatible[i], nil
			}
		}
	}

	best := 0
	for i := 1; i < len(compatible); i++ {
		if compatible[i].EfficiencyFactor > compatible[best].EfficiencyFactor {
			best = i
		}
	}
	return &compatible[best], nil
}

// SelectAlternativeMachine подбирает станок для операции, исключая
// заданный. Используется при форс-мажоре на станке.
func SelectAlternativeMachine(op *domain.Operation, candidates []domain.MachineProfile, exclude string) (*domain.MachineProfile, error) {
	filtered := make([]domain.MachineProfile, 0, len(candidates))
	for _, m := range candidates {
		if m.Name != exclude {
			filtered = append(filtered, m)
		}
	}

	// Предпочтение недоступного станка не должно влиять на выбор.
	if op.PreferredMachine == exclude {
		cleared := *op
		cleared.PreferredMachine = ""
		return SelectMachine(&cleared, filtered)
	}
	return SelectMachine(op, filtered)
}
