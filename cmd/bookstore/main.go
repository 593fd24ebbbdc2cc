package main

import (
	"errors"
	"io/fs"
	stdLog "log"
	"os"

	"github.com/kimnamhyeong01/bookstore-service/bookstore/cli"
	"github.com/joho/godotenv"
)

// @title          Bookstore API
// @version        1.0
// @description    Storefront for books: catalog search, baskets, purchases and pickup reservations.
// @BasePath       /
// @securityDefinitions.apikey Bearer
// @in             header
// @name           Authorization
//
//go:generate swag init -g cmd/bookstore/main.go -d ../../ -o ../../swagger --parseInternal
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := cli.NewRootCommand().Execute(); err != nil {
		stdLog.Println(err)
		os.Exit(1)
	}
}
