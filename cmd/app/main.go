package main

import "github.com/init-pkg/column-mapper/internal/bootstrap"

// @title       Column Mapper API
// @version     1.0
// @description Maps spreadsheet headers onto per-industry canonical schemas.
// @BasePath    /api/v1
func main() {
	bootstrap.Run()
}
