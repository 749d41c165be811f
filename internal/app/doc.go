// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// TaskService is the task lifecycle coordinator. TaskGuard wraps any
// ports.TaskService with per-caller authorization. AuthService drives
// registration and login.
package app
