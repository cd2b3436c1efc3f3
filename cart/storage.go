package cart

import (
	"os"
)

// Storage adalah tempat penyimpanan lokal isi keranjang.
type Storage interface {
	// Load mengembalikan (nil, nil) jika belum ada yang tersimpan.
	Load() ([]byte, error)
	Save(data []byte) error
	Delete() error
}

// FileStorage menyimpan keranjang sebagai file JSON di perangkat klien.
type FileStorage struct {
	Path string
}

func (f FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (f FileStorage) Save(data []byte) error {
	return os.WriteFile(f.Path, data, 0644)
}

func (f FileStorage) Delete() error {
	err := os.Remove(f.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
