// Package domain contains the core learning entities of the application:
// questions with their scheduling state, review difficulties, and the per-user
// learning statistics record. It is independent of any storage or delivery
// mechanism.
package domain
