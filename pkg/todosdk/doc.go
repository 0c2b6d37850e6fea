// Package todosdk is a Go client for the todo service.
//
// SDKClient covers the unauthenticated endpoints: register, login, email
// verification, password reset and the health probes. Login returns a
// Session which carries the token pair and refreshes it when the server
// answers "Access token expired". Concurrent requests on one Session share
// a single refresh call.
//
//	client := todosdk.NewSDKClient("http://localhost:8080")
//	sess, err := client.Login(ctx, "alice@example.com", "Passw0rd!")
//	if err != nil {
//		return err
//	}
//	todo, err := sess.CreateTodo(ctx, todosdk.CreateTodoRequest{Title: "Buy milk"})
package todosdk
