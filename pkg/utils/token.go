package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// sessionTokenLength segue o tamanho do token hexadecimal de 32 bytes
const sessionTokenLength = 64

// GenerateSessionToken gera um token opaco e aleatório para sessões administrativas
func GenerateSessionToken() (string, error) {
	return gonanoid.Generate(characters, sessionTokenLength)
}
