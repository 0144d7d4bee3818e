package v1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ldlm.proto
//go:generate mockgen -destination=mock/ldlm_mock.go -package=mock_v1 github.com/pixperk/ldlm/api/v1 LDLMClient
