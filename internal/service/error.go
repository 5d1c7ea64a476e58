package service

import "errors"

// Error definitions for the service package.
var (
	ErrUnsupportedSourceLanguage = errors.New("source language not supported")
	ErrUnsupportedTargetLanguage = errors.New("target language not supported")
	ErrTranslationFailed         = errors.New("translation failed")
	ErrSpeechFailed              = errors.New("speech generation failed")
	ErrTranslationNotFound       = errors.New("translation not found")
	ErrAudioNotFound             = errors.New("audio file not found")
)
