// Package storage define la taxonomía de errores compartida por todos los
// adaptadores de almacenamiento. Los repositorios concretos (postgres, mongo,
// memory) traducen los errores de su driver a estos sentinels; las capas de
// arriba solo dependen de errors.Is sobre este paquete.
package storage

import "errors"

var (
	// ErrNotFound: el registro objetivo no existe (delete/lookup por id).
	ErrNotFound = errors.New("storage: not found")

	// ErrDuplicateKey: insert estricto sobre un id de negocio ya existente.
	ErrDuplicateKey = errors.New("storage: duplicate key")

	// ErrUnavailable: el store no es alcanzable. Se propaga sin reintentos;
	// el siguiente caller vuelve a intentar la conexión perezosa.
	ErrUnavailable = errors.New("storage: unavailable")
)
