package main

import (
	"bbl-admins-portal/app"
)

func main() {
	app.Run()
}
