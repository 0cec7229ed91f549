package security

import "testing"

func TestEncryptAndValidatePassword(t *testing.T) {
	hash, err := Encrypt("S3cret!pass")
	if err != nil {
		t.Fatalf("encrypt err: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("password stored in plaintext")
	}
	if !ValidatePassword("S3cret!pass", hash) {
		t.Fatal("correct password rejected")
	}
	if ValidatePassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestMd5(t *testing.T) {
	if got := Md5("9021345:187236"); got != "05c4e2a290dfb393bff8a445b0aac1d0" {
		t.Fatalf("unexpected digest: %s", got)
	}
	// 相同输入必须稳定，幂等键依赖这一点
	if Md5("9021345:187236") != Md5("9021345:187236") {
		t.Fatal("digest not deterministic")
	}
}

func TestAesRoundTrip(t *testing.T) {
	const plain = "investor-readonly-pass"
	ct, err := EncryptString(plain, "app-secret")
	if err != nil {
		t.Fatalf("encrypt err: %v", err)
	}
	got, err := DecryptString(ct, "app-secret")
	if err != nil {
		t.Fatalf("decrypt err: %v", err)
	}
	if got != plain {
		t.Fatalf("round trip mismatch: %q", got)
	}
	if _, err := DecryptString(ct, "other-secret"); err == nil {
		t.Fatal("decrypt with wrong secret should fail")
	}

	// 随机nonce，两次加密的密文不应相同
	ct2, err := EncryptString(plain, "app-secret")
	if err != nil {
		t.Fatalf("encrypt err: %v", err)
	}
	if ct == ct2 {
		t.Fatal("ciphertext should not repeat")
	}
}

func TestDecryptGarbage(t *testing.T) {
	if _, err := DecryptString("not-base64!!", "s"); err == nil {
		t.Fatal("expected base64 error")
	}
	if _, err := DecryptString("YWJj", "s"); err == nil {
		t.Fatal("expected short ciphertext error")
	}
}
