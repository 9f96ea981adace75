/*
Copyright © 2025 pdfchat
*/
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/pdfchat/pdfchat-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}
