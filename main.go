package main

import "github.com/ariebrainware/clinic-api/cmd"

// @title           Clinic Management API
// @version         1.0
// @description     CRUD API for clinic patients and their appointments.
// @BasePath        /
func main() {
	cmd.Execute()
}
