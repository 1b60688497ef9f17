package main

import (
	"log"
	"net/http"
	"os"

	"github.com/velamart/catalog-admin/app/cmd"
	"github.com/velamart/catalog-admin/app/configs"
	"github.com/velamart/catalog-admin/app/routes"
	"github.com/velamart/catalog-admin/app/utils/sessions"
)

func main() {
	configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("session keys: ", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	log.Println("Session store initialized.")

	router := routes.NewRouter(db, sessionStore)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
