//go:generate mockgen -source=../catalogos.go          -destination=./mock_catalogos.go          -package=mocks
//go:generate mockgen -source=../idempotencia.go       -destination=./mock_idempotencia.go       -package=mocks
//go:generate mockgen -source=../pedidos_repository.go -destination=./mock_pedidos_repository.go -package=mocks
//go:generate mockgen -source=../validador.go          -destination=./mock_validador.go          -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../carga_service.go      -destination=./mock_carga_service.go      -package=mocks
//go:generate mockgen -source=../publicador.go         -destination=./mock_publicador.go         -package=mocks

package mocks
