package checkout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidGuestInfo базовая ошибка валидации данных гостя
	ErrInvalidGuestInfo = errors.New("checkout: guest info is invalid")

	// ErrTerminalStep возвращается при попытке перехода из Confirmation
	ErrTerminalStep = errors.New("checkout: confirmation is a terminal step")

	// ErrPaymentRequired возвращается при next() на шаге Payment: переход только после capture
	ErrPaymentRequired = errors.New("checkout: payment step advances only after a captured payment")

	// ErrNotAtPayment возвращается, когда оплата завершается не на шаге Payment
	ErrNotAtPayment = errors.New("checkout: payment can only be completed at the payment step")

	// ErrDraftIncomplete возвращается, когда для шага нужен полный черновик
	ErrDraftIncomplete = errors.New("checkout: booking draft is incomplete")

	// ErrStepNotReachable возвращается при переходе на недоступный шаг
	ErrStepNotReachable = errors.New("checkout: step is not reachable")

	// ErrInvalidStep возвращается для индекса шага вне диапазона
	ErrInvalidStep = errors.New("checkout: invalid step")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("checkout: internal error")
)

// ValidationError ошибки валидации по полям (имя поля в JSON → сообщение)
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidGuestInfo.Error(), strings.Join(parts, "; "))
}

// Unwrap позволяет проверять errors.Is(err, ErrInvalidGuestInfo)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidGuestInfo
}
