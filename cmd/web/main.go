// @title           Job Board API
// @version         1.0
// @description     Вакансии, отклики с резюме и профили пользователей.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
