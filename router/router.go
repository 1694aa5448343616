package router

import (
	"bank-admin-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(userHandler *handler.UserHandler, accountHandler *handler.AccountHandler, cardHandler *handler.CardHandler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /api/user/all-users", handler.ErrorHandlingMiddleware(userHandler.GetAllUsers))
	mux.Handle("GET /api/user/{id}/accounts", handler.ErrorHandlingMiddleware(userHandler.GetUserAccounts))
	mux.Handle("GET /api/user/{id}/cards", handler.ErrorHandlingMiddleware(userHandler.GetUserCards))
	mux.Handle("GET /api/user/{id}/balance", handler.ErrorHandlingMiddleware(userHandler.GetOverallBalance))
	mux.Handle("POST /api/user/create", handler.ErrorHandlingMiddleware(userHandler.CreateUser))
	mux.Handle("DELETE /api/user/delete/{id}", handler.ErrorHandlingMiddleware(userHandler.DeleteUser))
	mux.Handle("PUT /api/user/update/{id}", handler.ErrorHandlingMiddleware(userHandler.UpdateUser))

	mux.Handle("GET /api/account/all-accounts", handler.ErrorHandlingMiddleware(accountHandler.GetAllAccounts))
	mux.Handle("POST /api/account/create", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	mux.Handle("DELETE /api/account/delete/{number}", handler.ErrorHandlingMiddleware(accountHandler.DeleteAccount))
	mux.Handle("PUT /api/account/update/{number}", handler.ErrorHandlingMiddleware(accountHandler.UpdateAccount))

	mux.Handle("GET /api/card/all-cards", handler.ErrorHandlingMiddleware(cardHandler.GetAllCards))
	mux.Handle("POST /api/card/create", handler.ErrorHandlingMiddleware(cardHandler.CreateCard))
	mux.Handle("DELETE /api/card/delete/{number}", handler.ErrorHandlingMiddleware(cardHandler.DeleteCard))
	mux.Handle("PUT /api/card/update/{number}", handler.ErrorHandlingMiddleware(cardHandler.UpdateCard))

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}
