package main

// @title           Trip Flight Planner API
// @version         0.1.0
// @description     trip-flight-planner
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {
	Execute()
}
