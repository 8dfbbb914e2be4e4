package pricelist

import "time"

// SetPublishClock reemplaza el reloj del caso de uso en tests.
func SetPublishClock(uc *PublishUseCase, now func() time.Time) { uc.now = now }
