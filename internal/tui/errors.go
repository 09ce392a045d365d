// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/session-wallet/internal/service"
	"github.com/MKhiriev/session-wallet/internal/store"
	"github.com/MKhiriev/session-wallet/internal/wallet"
)

var errBridgeDetached = errors.New("интерфейс не запущен")

// humanizeError turns service and store errors into messages for the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrBusy):
		return "Дождитесь завершения текущей операции"
	case errors.Is(err, service.ErrDuplicateAddress):
		return "Такой адрес уже есть в списке"
	case errors.Is(err, store.ErrQuotaExceeded):
		return "Недостаточно места в хранилище сессии"
	case errors.Is(err, store.ErrStoreClosed):
		return "Сессия завершена"
	case errors.Is(err, service.ErrSessionEnded):
		return "Сессия завершена до окончания операции"
	case errors.Is(err, wallet.ErrWrongPassword):
		return "Неверный пароль"
	case errors.Is(err, wallet.ErrUnsupportedFormat):
		return "Повреждённый файл ключа"
	case errors.Is(err, wallet.ErrEmptyPassword):
		return "Пароль не может быть пустым"
	default:
		return err.Error()
	}
}
