package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name F1DataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename f1_data_provider_mock.go
