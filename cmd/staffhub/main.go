package main

import "staffhub/internal/app"

// @title           ByteBlitz Staff Hub API
// @version         1.0
// @description     Staff portal: leads, bookings, commissions and role-gated admin.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
