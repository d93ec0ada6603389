package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// ErrNotFound возвращается при обновлении несуществующей записи.
var ErrNotFound = errors.New("запись не найдена")

// LenientEnumDecode управляет разбором enum-колонок на пути поиска по id:
// при true неизвестное текстовое значение молча заменяется значением по
// умолчанию (историческое поведение), при false возвращается ошибка.
// Выставляется из конфигурации при старте (ENUM_DECODE_FALLBACK).
var LenientEnumDecode = true

// ConnectDB создает пул соединений по DATABASE_URL из окружения.
func ConnectDB() (*pgxpool.Pool, error) {
	return connect("DATABASE_URL")
}

// ConnectTestDB создает пул по TEST_DATABASE_URL (для интеграционных тестов).
func ConnectTestDB() (*pgxpool.Pool, error) {
	return connect("TEST_DATABASE_URL")
}

func connect(envKey string) (*pgxpool.Pool, error) {
	// .env может отсутствовать, тогда читаем переменные окружения как есть
	_ = godotenv.Load()

	connStr := os.Getenv(envKey)
	if connStr == "" {
		return nil, fmt.Errorf("переменная %s не задана", envKey)
	}

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}
	return pool, nil
}
