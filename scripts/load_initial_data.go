package main

import (
	"fmt"
	"log"
	"os"

	"teammatch-backend/internal/auth"
	"teammatch-backend/internal/config"
	"teammatch-backend/internal/database"
	"teammatch-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching the YAML layout
type UserData struct {
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	StudentNo   string `yaml:"student_no"`
	School      string `yaml:"school,omitempty"`
	Personality string `yaml:"personality,omitempty"`
	Goals       string `yaml:"goals,omitempty"`
	Skills      string `yaml:"skills,omitempty"`
}

type CategoryData struct {
	Name string `yaml:"name"`
}

type ClassData struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description,omitempty"`
	Code          string   `yaml:"code"`
	OwnerUsername string   `yaml:"owner_username"`
	Members       []string `yaml:"members,omitempty"`
}

type TeamData struct {
	Name           string   `yaml:"name"`
	Goal           string   `yaml:"goal,omitempty"`
	RequiredSkills string   `yaml:"required_skills,omitempty"`
	Capacity       *int     `yaml:"capacity,omitempty"`
	OwnerUsername  string   `yaml:"owner_username"`
	ClassName      string   `yaml:"class_name,omitempty"`
	CategoryName   string   `yaml:"category_name,omitempty"`
	Members        []string `yaml:"members,omitempty"`
}

type SeedFile struct {
	Users      []UserData     `yaml:"users"`
	Categories []CategoryData `yaml:"categories"`
	Classes    []ClassData    `yaml:"classes"`
	Teams      []TeamData     `yaml:"teams"`
}

func main() {
	path := "scripts/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", path, err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	if err := load(db, &seed); err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}
	log.Printf("seed data loaded: %d users, %d categories, %d classes, %d teams",
		len(seed.Users), len(seed.Categories), len(seed.Classes), len(seed.Teams))
}

func load(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		usersByName := make(map[string]*models.User)
		for _, u := range seed.Users {
			hash, err := auth.HashPassword(u.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.Username, err)
			}
			user := &models.User{
				Username:     u.Username,
				PasswordHash: hash,
				Name:         u.Name,
				StudentNo:    u.StudentNo,
				School:       u.School,
			}
			if u.Personality != "" || u.Goals != "" || u.Skills != "" {
				user.Profile = &models.Profile{
					Personality: u.Personality,
					Goals:       u.Goals,
					Skills:      u.Skills,
				}
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create user %s: %w", u.Username, err)
			}
			usersByName[u.Username] = user
		}

		categoriesByName := make(map[string]*models.Category)
		for _, c := range seed.Categories {
			category := &models.Category{Name: c.Name}
			if err := tx.Create(category).Error; err != nil {
				return fmt.Errorf("create category %s: %w", c.Name, err)
			}
			categoriesByName[c.Name] = category
		}

		classesByName := make(map[string]*models.Classroom)
		for _, cl := range seed.Classes {
			owner, ok := usersByName[cl.OwnerUsername]
			if !ok {
				return fmt.Errorf("class %s references unknown owner %s", cl.Name, cl.OwnerUsername)
			}
			class := &models.Classroom{
				Name:        cl.Name,
				Description: cl.Description,
				Code:        cl.Code,
				OwnerID:     owner.ID,
			}
			if err := tx.Create(class).Error; err != nil {
				return fmt.Errorf("create class %s: %w", cl.Name, err)
			}
			if err := tx.Create(&models.ClassMember{ClassID: class.ID, UserID: owner.ID, Role: models.ClassRoleAdmin}).Error; err != nil {
				return fmt.Errorf("create class admin for %s: %w", cl.Name, err)
			}
			for _, username := range cl.Members {
				member, ok := usersByName[username]
				if !ok {
					return fmt.Errorf("class %s references unknown member %s", cl.Name, username)
				}
				if err := tx.Create(&models.ClassMember{ClassID: class.ID, UserID: member.ID, Role: models.ClassRoleMember}).Error; err != nil {
					return fmt.Errorf("add %s to class %s: %w", username, cl.Name, err)
				}
			}
			classesByName[cl.Name] = class
		}

		for _, t := range seed.Teams {
			owner, ok := usersByName[t.OwnerUsername]
			if !ok {
				return fmt.Errorf("team %s references unknown owner %s", t.Name, t.OwnerUsername)
			}
			team := &models.Team{
				Name:           t.Name,
				Goal:           t.Goal,
				RequiredSkills: t.RequiredSkills,
				Capacity:       t.Capacity,
				OwnerID:        owner.ID,
				RecruitStatus:  models.RecruitStatusOpen,
			}
			if t.ClassName != "" {
				class, ok := classesByName[t.ClassName]
				if !ok {
					return fmt.Errorf("team %s references unknown class %s", t.Name, t.ClassName)
				}
				team.ClassID = &class.ID
			}
			if t.CategoryName != "" {
				category, ok := categoriesByName[t.CategoryName]
				if !ok {
					return fmt.Errorf("team %s references unknown category %s", t.Name, t.CategoryName)
				}
				team.CategoryID = &category.ID
			}
			if err := tx.Create(team).Error; err != nil {
				return fmt.Errorf("create team %s: %w", t.Name, err)
			}
			if err := tx.Create(&models.TeamMember{TeamID: team.ID, UserID: owner.ID, Role: models.TeamRoleLeader}).Error; err != nil {
				return fmt.Errorf("create leader membership for %s: %w", t.Name, err)
			}
			for _, username := range t.Members {
				member, ok := usersByName[username]
				if !ok {
					return fmt.Errorf("team %s references unknown member %s", t.Name, username)
				}
				if err := tx.Create(&models.TeamMember{TeamID: team.ID, UserID: member.ID, Role: models.TeamRoleMember}).Error; err != nil {
					return fmt.Errorf("add %s to team %s: %w", username, t.Name, err)
				}
			}
		}

		return nil
	})
}
