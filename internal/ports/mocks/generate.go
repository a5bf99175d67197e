//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../product_store.go    -destination=./mock_product_store.go    -package=mocks
//go:generate mockgen -source=../client_store.go     -destination=./mock_client_store.go     -package=mocks
//go:generate mockgen -source=../tx.go               -destination=./mock_tx.go               -package=mocks
//go:generate mockgen -source=../order_cache.go      -destination=./mock_order_cache.go      -package=mocks
//go:generate mockgen -source=../renderer.go         -destination=./mock_renderer.go         -package=mocks
//go:generate mockgen -source=../notifier.go         -destination=./mock_notifier.go         -package=mocks
//go:generate mockgen -source=../order_service.go    -destination=./mock_order_service.go    -package=mocks
//go:generate mockgen -source=../catalog_validator.go -destination=./mock_catalog_validator.go -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks

package mocks
