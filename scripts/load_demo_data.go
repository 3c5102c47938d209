package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KarlovS28/uchettest/internal/auth"
	"github.com/KarlovS28/uchettest/internal/config"
	"github.com/KarlovS28/uchettest/internal/database"
	"github.com/KarlovS28/uchettest/internal/database/models"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Demo data loader. Reads a YAML description of an organization with its
// departments, employees and inventory and loads it through the storage layer,
// marking the system initialized. Intended for local development only.
//
// Usage: go run scripts/load_demo_data.go [data.yaml]

type demoData struct {
	Organization string `yaml:"organization"`
	Admin        struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
		Position string `yaml:"position"`
	} `yaml:"admin"`
	Departments []struct {
		Name      string `yaml:"name"`
		Employees []struct {
			FullName  string `yaml:"full_name"`
			Position  string `yaml:"position"`
			HireDate  string `yaml:"hire_date"`
			BirthDate string `yaml:"birth_date"`
			Inventory []struct {
				Name   string `yaml:"name"`
				Number string `yaml:"number"`
				Cost   int    `yaml:"cost"`
			} `yaml:"inventory"`
		} `yaml:"employees"`
	} `yaml:"departments"`
}

func main() {
	_ = godotenv.Load()

	path := "scripts/demo_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read %s: %v", path, err)
	}
	var data demoData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("failed to parse %s: %v", path, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	store := storage.NewGorm(db)
	if err := load(store, &data); err != nil {
		log.Fatal(err)
	}
	fmt.Println("demo data loaded")
}

func load(store storage.Storage, data *demoData) error {
	return store.RunInTransaction(func(tx storage.Storage) error {
		org := &models.Organization{Name: data.Organization}
		if err := tx.CreateOrganization(org); err != nil {
			return fmt.Errorf("organization: %w", err)
		}

		hash, err := auth.HashPassword(data.Admin.Password)
		if err != nil {
			return err
		}
		admin := &models.User{
			Username:       data.Admin.Username,
			Password:       hash,
			FullName:       data.Admin.FullName,
			Position:       data.Admin.Position,
			OrganizationID: org.ID,
			Role:           models.UserRoleAdmin,
			Permissions:    models.PermissionList{models.PermissionFullAccess},
		}
		if err := tx.CreateUser(admin); err != nil {
			return fmt.Errorf("admin: %w", err)
		}

		for _, d := range data.Departments {
			department := &models.Department{Name: d.Name, OrganizationID: org.ID}
			if err := tx.CreateDepartment(department); err != nil {
				return fmt.Errorf("department %q: %w", d.Name, err)
			}

			for _, e := range d.Employees {
				employee := &models.Employee{
					FullName:              e.FullName,
					DepartmentID:          department.ID,
					Position:              e.Position,
					MaterialLiabilityType: models.LiabilityNone,
					OrganizationID:        org.ID,
				}
				if employee.HireDate, err = parseDate(e.HireDate); err != nil {
					return fmt.Errorf("employee %q hire_date: %w", e.FullName, err)
				}
				if employee.BirthDate, err = parseDate(e.BirthDate); err != nil {
					return fmt.Errorf("employee %q birth_date: %w", e.FullName, err)
				}
				if err := tx.CreateEmployee(employee); err != nil {
					return fmt.Errorf("employee %q: %w", e.FullName, err)
				}

				for _, item := range e.Inventory {
					inv := &models.InventoryItem{
						Name:            item.Name,
						InventoryNumber: item.Number,
						Cost:            item.Cost,
						EmployeeID:      employee.ID,
						DepartmentID:    department.ID,
						OrganizationID:  org.ID,
					}
					if err := tx.CreateInventoryItem(inv); err != nil {
						return fmt.Errorf("inventory %q: %w", item.Number, err)
					}
				}
			}
		}

		return tx.PutSetting(models.SettingSystemInitialized, "true")
	})
}

func parseDate(value string) (t time.Time, err error) {
	for _, layout := range []string{"2006-01-02", "02.01.2006"} {
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return t, err
}
