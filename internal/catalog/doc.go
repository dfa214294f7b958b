// Пакет catalog — каталог станков цеха.
//
// Каталог загружается из YAML-файла (Load) или берётся встроенным
// (Default) и после создания не изменяется. Все мутирующие сценарии,
// например исключение сломанного станка при форс-мажоре, возвращают
// новый каталог (Without), не трогая исходный.
package catalog
