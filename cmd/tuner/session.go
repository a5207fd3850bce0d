package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tuner/internal/session"
)

// createRegisterCommand создает команду register
func (app *Application) createRegisterCommand() *cobra.Command {
	var fullName string
	var email string

	cmd := &cobra.Command{
		Use:   "register [username] [password]",
		Short: "Register a local profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.Session.Register(fullName, email, args[0], args[1]); err != nil {
				return fmt.Errorf("ошибка регистрации: %w", err)
			}
			fmt.Printf("👤 Пользователь %s зарегистрирован\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&fullName, "name", "n", "", "полное имя")
	cmd.Flags().StringVarP(&email, "email", "e", "", "адрес электронной почты")

	return cmd
}

// createLoginCommand создает команду login
func (app *Application) createLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username] [password]",
		Short: "Log in to a local profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.Session.Login(args[0], args[1]); err != nil {
				return fmt.Errorf("ошибка входа: %w", err)
			}
			fmt.Printf("👤 Вход выполнен: %s\n", args[0])
			return nil
		},
	}
}

// createLogoutCommand создает команду logout
func (app *Application) createLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := app.Session.Logout(); err != nil {
				return fmt.Errorf("ошибка выхода: %w", err)
			}
			fmt.Println("👤 Сессия закрыта")
			return nil
		},
	}
}

// createWhoamiCommand создает команду whoami
func (app *Application) createWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session user",
		Run: func(_ *cobra.Command, _ []string) {
			user, err := app.Session.Current()
			if errors.Is(err, session.ErrNotLoggedIn) {
				fmt.Println("👤 Вход не выполнен")
				return
			}
			if err != nil {
				fmt.Printf("Ошибка: %v\n", err)
				return
			}

			fmt.Printf("👤 Текущий пользователь: %s\n", user.Username)
			if user.FullName != "" {
				fmt.Printf("   Имя: %s\n", user.FullName)
			}
			if user.Email != "" {
				fmt.Printf("   Почта: %s\n", user.Email)
			}
		},
	}
}
