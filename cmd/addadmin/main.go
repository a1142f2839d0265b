package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Aliyuabk/EMS/app/config"
	"github.com/Aliyuabk/EMS/app/database"
	"github.com/Aliyuabk/EMS/app/models"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	role := flag.String("role", models.RoleSchool, "admin role (school or jera)")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Println("Usage: addadmin -username <name> -password <pass> [-role school|jera]")
		os.Exit(1)
	}
	if *role != models.RoleSchool && *role != models.RoleJera {
		fmt.Println("Role must be school or jera")
		os.Exit(1)
	}

	config.InitDB()
	defer config.GetDB().Close()

	admin, err := database.CreateAdmin(config.GetDB(), *username, *password, *role)
	if err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", admin.Username, admin.Role)
}
