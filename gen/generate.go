package gen

// Regenerate the wire codec from protos/. Output is committed so builds
// never require protoc.

//go:generate protoc -I ../protos --go_out=paths=source_relative,Mchat.proto=github.com/relaymesh/chat-service/gen/chatpb:chatpb --go-grpc_out=paths=source_relative,Mchat.proto=github.com/relaymesh/chat-service/gen/chatpb:chatpb ../protos/chat.proto

//go:generate protoc -I ../protos --go_out=paths=source_relative,Mchat.proto=github.com/relaymesh/chat-service/gen/chatpb,Mreplica.proto=github.com/relaymesh/chat-service/gen/replicapb:replicapb --go-grpc_out=paths=source_relative,Mchat.proto=github.com/relaymesh/chat-service/gen/chatpb,Mreplica.proto=github.com/relaymesh/chat-service/gen/replicapb:replicapb ../protos/replica.proto
